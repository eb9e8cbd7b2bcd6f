package observability

import (
	"context"
	"testing"
)

func TestSampleRatioClamps(t *testing.T) {
	cases := map[float64]float64{
		0:    0.1,
		-1:   0,
		2:    1,
		0.25: 0.25,
	}
	for in, want := range cases {
		if got := SampleRatio(in); got != want {
			t.Fatalf("SampleRatio(%v)=%v want %v", in, got, want)
		}
	}
}

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders(" api-key = abc ,bad, =x,team=seed")
	if len(got) != 2 || got["api-key"] != "abc" || got["team"] != "seed" {
		t.Fatalf("unexpected headers: %#v", got)
	}
	if ParseHeaders("  ") != nil {
		t.Fatalf("expected nil for blank input")
	}
	if ParseHeaders("novalue,=") != nil {
		t.Fatalf("expected nil when every pair is malformed")
	}
}

func TestInitOTelDisabledReturnsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, OtelConfig{Enabled: false})
	if shutdown == nil {
		t.Fatalf("expected shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
