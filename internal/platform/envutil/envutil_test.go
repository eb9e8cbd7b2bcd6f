package envutil

import (
	"reflect"
	"testing"
)

func TestLookupsFallBackToDefaults(t *testing.T) {
	t.Setenv("ENVUTIL_STR", "  value ")
	t.Setenv("ENVUTIL_INT", "x")
	t.Setenv("ENVUTIL_BOOL", "off")
	t.Setenv("ENVUTIL_FLOAT", "0.5")
	t.Setenv("ENVUTIL_LIST", "a, ,b,")

	if got := String("ENVUTIL_STR", "d", nil); got != "value" {
		t.Fatalf("String: %q", got)
	}
	if got := String("ENVUTIL_MISSING", "d", nil); got != "d" {
		t.Fatalf("String default: %q", got)
	}
	if got := Int("ENVUTIL_INT", 7, nil); got != 7 {
		t.Fatalf("Int should fall back on parse error, got %d", got)
	}
	if got := Bool("ENVUTIL_BOOL", true, nil); got {
		t.Fatalf("Bool: expected false")
	}
	if got := Bool("ENVUTIL_MISSING", true, nil); !got {
		t.Fatalf("Bool default: expected true")
	}
	if got := Float("ENVUTIL_FLOAT", 0.1, nil); got != 0.5 {
		t.Fatalf("Float: %v", got)
	}
	if got := List("ENVUTIL_LIST", nil, nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("List: %#v", got)
	}
}
