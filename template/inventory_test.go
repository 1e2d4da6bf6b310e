package template

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleInventoryJSON = `{
  "slide-0": {
    "shape-10": {"name": "Body", "shape_type": "PLACEHOLDER", "placeholder_type": "BODY"},
    "shape-2": {"name": "Title", "shape_type": "PLACEHOLDER", "placeholder_type": "CENTER_TITLE"}
  },
  "slide-1": {
    "shape-0": {"name": "Picture", "shape_type": "PICTURE"}
  }
}`

func TestParseInventory(t *testing.T) {
	inv, err := ParseInventory([]byte(sampleInventoryJSON))
	if err != nil {
		t.Fatalf("ParseInventory() error: %v", err)
	}

	if len(inv) != 2 {
		t.Fatalf("got %d slides, want 2", len(inv))
	}

	title := inv["slide-0"]["shape-2"]
	if title.PlaceholderType != RoleCenterTitle {
		t.Errorf("placeholder_type = %q, want %q", title.PlaceholderType, RoleCenterTitle)
	}
	if !title.IsTitleRole() {
		t.Error("CENTER_TITLE should be a title role")
	}
	if inv["slide-1"]["shape-0"].IsTitleRole() {
		t.Error("a picture without placeholder metadata is not a title role")
	}
}

func TestParseInventoryMalformed(t *testing.T) {
	if _, err := ParseInventory([]byte(`{"slide-0": [1,2]}`)); err == nil {
		t.Error("ParseInventory() on malformed JSON should return an error")
	}
}

func TestLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte(sampleInventoryJSON), 0644); err != nil {
		t.Fatal(err)
	}

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory() error: %v", err)
	}
	if len(inv["slide-0"]) != 2 {
		t.Errorf("slide-0 has %d shapes, want 2", len(inv["slide-0"]))
	}

	if _, err := LoadInventory(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadInventory() on a missing file should return an error")
	}
}

func TestShapeKeysNumericOrder(t *testing.T) {
	inv, err := ParseInventory([]byte(sampleInventoryJSON))
	if err != nil {
		t.Fatal(err)
	}

	keys := inv.ShapeKeys("slide-0")
	if len(keys) != 2 || keys[0] != "shape-2" || keys[1] != "shape-10" {
		t.Errorf("ShapeKeys() = %v, want [shape-2 shape-10]", keys)
	}

	if keys := inv.ShapeKeys("slide-99"); keys != nil {
		t.Errorf("ShapeKeys() for an absent slide = %v, want nil", keys)
	}
}

func TestShapeKeysNonNumericSuffix(t *testing.T) {
	inv := Inventory{
		"slide-0": {
			"shape-3":     {},
			"shape-extra": {},
			"shape-1":     {},
		},
	}

	keys := inv.ShapeKeys("slide-0")
	want := []string{"shape-1", "shape-3", "shape-extra"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("ShapeKeys() = %v, want %v", keys, want)
		}
	}
}

func TestSlideKey(t *testing.T) {
	if got := SlideKey(0); got != "slide-0" {
		t.Errorf("SlideKey(0) = %q", got)
	}
	if got := SlideKey(12); got != "slide-12" {
		t.Errorf("SlideKey(12) = %q", got)
	}
}
