package catalog

import (
	"testing"

	"github.com/dukerupert/aisle/internal/model"
)

func TestDefaultsForGrocery(t *testing.T) {
	d := DefaultsFor(model.StoreTypeGrocery)
	want := []string{"produce", "dairy", "meat", "bakery", "beverages", "frozen", "pantry", "snacks"}
	if len(d.CategoryIDs) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(d.CategoryIDs))
	}
	for i, id := range want {
		if d.CategoryIDs[i] != id {
			t.Errorf("CategoryIDs[%d] = %q, want %q", i, d.CategoryIDs[i], id)
		}
	}
	if d.Icon != "cart" {
		t.Errorf("icon = %q, want %q", d.Icon, "cart")
	}
}

func TestDefaultsForReturnsCopy(t *testing.T) {
	a := DefaultsFor(model.StoreTypeGrocery)
	a.CategoryIDs[0] = "snacks"
	b := DefaultsFor(model.StoreTypeGrocery)
	if b.CategoryIDs[0] != "produce" {
		t.Errorf("static defaults were mutated through a caller's copy: got %q", b.CategoryIDs[0])
	}
}

func TestDefaultsForUnknownType(t *testing.T) {
	d := DefaultsFor(model.StoreType("Bazaar"))
	if len(d.CategoryIDs) != 0 {
		t.Errorf("expected empty order for unknown type, got %v", d.CategoryIDs)
	}
	if d.Icon != "storefront" {
		t.Errorf("icon = %q, want generic fallback", d.Icon)
	}
}

func TestDefaultsReferenceKnownCategories(t *testing.T) {
	for _, st := range StoreTypes() {
		for _, id := range DefaultsFor(st).CategoryIDs {
			if _, ok := ByID(id); !ok {
				t.Errorf("%s default references unknown category %q", st, id)
			}
		}
	}
}
