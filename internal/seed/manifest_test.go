package seed

import (
	"strings"
	"testing"
)

func TestDefaultManifest(t *testing.T) {
	m, err := DefaultManifest()
	if err != nil {
		t.Fatalf("DefaultManifest: %v", err)
	}
	want := []Kind{KindItem, KindStructure, KindBot, KindBuilding, KindRecipe}
	if len(m.Sources) != len(want) {
		t.Fatalf("expected %d sources, got %d", len(want), len(m.Sources))
	}
	for i, k := range want {
		if m.Sources[i].Kind != k {
			t.Fatalf("source %d: expected %s, got %s", i, k, m.Sources[i].Kind)
		}
	}
}

func TestParseManifest_Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bad version", "version: 2\nsources:\n  - {kind: item, path: items.yaml}\n", "version"},
		{"no sources", "version: 1\n", "no sources"},
		{"unknown kind", "version: 1\nsources:\n  - {kind: potion, path: p.yaml}\n", "unknown kind"},
		{"missing path", "version: 1\nsources:\n  - {kind: item}\n", "path is required"},
		{"duplicate path", "version: 1\nsources:\n  - {kind: item, path: a.yaml}\n  - {kind: item, path: a.yaml}\n", "duplicate path"},
		{"intrinsic order", "version: 1\nsources:\n  - {kind: bot, path: bots.yaml}\n  - {kind: item, path: items.yaml}\n", "dependency item"},
		{"declared order", "version: 1\nsources:\n  - {kind: item, path: items.yaml}\n  - {kind: bot, path: bots.yaml, depends_on: [building]}\n  - {kind: building, path: b.yaml}\n", "dependency building"},
		{"disabled provider", "version: 1\nsources:\n  - {kind: item, path: items.yaml, enabled: false}\n  - {kind: structure, path: s.yaml}\n", "dependency item"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tc.raw))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestParseManifest_DropsDisabled(t *testing.T) {
	raw := "version: 1\nsources:\n  - {kind: item, path: items.yaml}\n  - {kind: bot, path: bots.yaml, enabled: false}\n"
	m, err := ParseManifest([]byte(raw))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if len(m.Sources) != 1 || m.Sources[0].Kind != KindItem {
		t.Fatalf("expected only the item source, got %+v", m.Sources)
	}
}
