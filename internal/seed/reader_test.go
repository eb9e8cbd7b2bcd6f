package seed

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestRead_Items(t *testing.T) {
	raw := []byte(`
items:
  - name: Wood
    durability: null
  - name: Axe
    durability: 50
`)
	recs, err := Read(KindItem, raw)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	wood, ok := recs[0].(ItemRecord)
	if !ok || wood.Name != "Wood" || wood.Durability != nil {
		t.Fatalf("unexpected first record %#v", recs[0])
	}
	axe := recs[1].(ItemRecord)
	if axe.Durability == nil || *axe.Durability != 50 {
		t.Fatalf("unexpected axe durability %v", axe.Durability)
	}
}

func TestRead_IsRestartable(t *testing.T) {
	raw := []byte("bots:\n  - {name: Worker, health: 10, strength: 1, speed: 2, vision: 3, recipes: [{item_type: Iron, amount: 2}]}\n")
	first, err := Read(KindBot, raw)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	second, err := Read(KindBot, raw)
	if err != nil {
		t.Fatalf("Read (again): %v", err)
	}
	a, b := first[0].(BotRecord), second[0].(BotRecord)
	if a.Name != b.Name || len(a.Recipes) != 1 || len(b.Recipes) != 1 || a.Recipes[0] != b.Recipes[0] {
		t.Fatalf("re-reading produced a different sequence: %#v vs %#v", a, b)
	}
}

func TestRead_AnchorsAndMergeKeys(t *testing.T) {
	raw := []byte(`
bots:
  - &base {name: Worker, health: 10, strength: 1, speed: 2, vision: 3, recipes: [{item_type: Iron, amount: 2}]}
  - <<: *base
    name: Scout
    vision: 9
`)
	recs, err := Read(KindBot, raw)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	scout := recs[1].(BotRecord)
	if scout.Name != "Scout" || *scout.Health != 10 || *scout.Vision != 9 {
		t.Fatalf("merge key not applied: %#v", scout)
	}
	if len(scout.Recipes) != 1 || scout.Recipes[0].ItemType != "Iron" {
		t.Fatalf("merged recipes missing: %#v", scout.Recipes)
	}

	items := []byte(`
x-shared:
  durability: &d 20
items:
  - name: Stick
    durability: *d
  - name: Club
    durability: *d
`)
	recs, err = Read(KindItem, items)
	if err != nil {
		t.Fatalf("Read items: %v", err)
	}
	for _, r := range recs {
		it := r.(ItemRecord)
		if it.Durability == nil || *it.Durability != 20 {
			t.Fatalf("scalar alias not resolved for %s: %v", it.Name, it.Durability)
		}
	}
}

func TestRead_EmptyCollections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty document", ""},
		{"comment only", "# nothing yet\n"},
		{"null document", "~\n"},
		{"missing key", "structures: []\n"},
		{"null value", "items:\n"},
		{"empty list", "items: []\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := Read(KindItem, []byte(tc.raw))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if len(recs) != 0 {
				t.Fatalf("expected no records, got %d", len(recs))
			}
		})
	}
}

func TestRead_ParseErrors(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		raw  string
		want string
	}{
		{"root is a sequence", KindItem, "- name: Wood\n", "mapping"},
		{"root is a scalar", KindItem, "hello\n", "mapping"},
		{"collection not a sequence", KindItem, "items:\n  name: Wood\n", "sequence"},
		{"record not a mapping", KindItem, "items:\n  - Wood\n", "record 0"},
		{"wrong field type", KindItem, "items:\n  - name: Wood\n    durability: lots\n", "record 0"},
		{"unknown field", KindItem, "items:\n  - name: Wood\n    weight: 3\n", "record 0"},
		{"unknown field in later record", KindItem, "items:\n  - name: Wood\n  - name: Axe\n    weight: 3\n", "record 1"},
		{"unknown field on anchored record", KindItem, "items:\n  - &w {name: Wood, weight: 3}\n", "record 0"},
		{"missing name", KindItem, "items:\n  - durability: 3\n", "name"},
		{"negative durability", KindItem, "items:\n  - name: Wood\n    durability: -1\n", "durability"},
		{"missing required int", KindStructure, "structures:\n  - {name: Tree, item_type: Wood, max_items: 3}\n", "health"},
		{"zero amount", KindBot, "bots:\n  - {name: W, health: 1, strength: 1, speed: 1, vision: 1, recipes: [{item_type: Iron, amount: 0}]}\n", "recipes[0].amount"},
		{"duplicate name", KindItem, "items:\n  - name: Wood\n  - name: Wood\n", "duplicate name"},
		{"recipe without output", KindRecipe, "recipes:\n  - {name: Planks, building_type: Sawmill, output_amount: 1}\n", "output_item_type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(tc.kind, []byte(tc.raw))
			if !IsCode(err, CodeParse) {
				t.Fatalf("expected parse error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in error, got %v", tc.want, err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"items.yaml": {Data: []byte("items:\n  - name: Wood\n")},
	}
	f, err := ReadFile(fsys, "items.yaml", KindItem)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if f.Fingerprint != Fingerprint(f.Raw) || len(f.Records) != 1 || f.Kind != KindItem {
		t.Fatalf("unexpected file %+v", f)
	}

	_, err = ReadFile(fsys, "missing.yaml", KindItem)
	if !IsCode(err, CodeParse) || !strings.Contains(err.Error(), "source missing") {
		t.Fatalf("expected source missing parse error, got %v", err)
	}
}
