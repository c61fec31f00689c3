package store

import (
	"testing"

	"github.com/dukerupert/aisle/internal/catalog"
	"github.com/dukerupert/aisle/internal/database"
	"github.com/dukerupert/aisle/internal/model"
)

func setupStoreTestDB(t *testing.T) *StoreStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStoreStore(db)
}

var testLocation = model.StoreLocation{Latitude: 47.6, Longitude: -122.3, Address: "1 Pike St"}

func TestStoreCreateSeedsDefaultOrder(t *testing.T) {
	ss := setupStoreTestDB(t)

	st, err := ss.Create("Corner Grocer", model.StoreTypeGrocery, testLocation, nil)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	want := catalog.DefaultsFor(model.StoreTypeGrocery).CategoryIDs
	if len(st.CategoryOrder) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(st.CategoryOrder))
	}
	for i, id := range want {
		if st.CategoryOrder[i] != id {
			t.Errorf("CategoryOrder[%d] = %q, want %q", i, st.CategoryOrder[i], id)
		}
	}
}

func TestStoreOrderNotAliased(t *testing.T) {
	ss := setupStoreTestDB(t)

	st, _ := ss.Create("Corner Grocer", model.StoreTypeGrocery, testLocation, nil)

	// Mutating the returned slice must not reach the static defaults...
	st.CategoryOrder[0] = "snacks"
	if catalog.DefaultsFor(model.StoreTypeGrocery).CategoryIDs[0] != "produce" {
		t.Error("static grocery defaults were mutated through a store")
	}

	// ...nor the stored row.
	got, _ := ss.GetByID(st.ID)
	if got.CategoryOrder[0] != "produce" {
		t.Errorf("stored order[0] = %q, want %q", got.CategoryOrder[0], "produce")
	}
}

func TestStoreReorderIsPerStore(t *testing.T) {
	ss := setupStoreTestDB(t)

	a, _ := ss.Create("A", model.StoreTypeGrocery, testLocation, nil)
	b, _ := ss.Create("B", model.StoreTypeGrocery, testLocation, nil)

	if err := ss.ReorderCategories(a.ID, []string{"snacks", "produce"}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	gotA, _ := ss.GetByID(a.ID)
	if len(gotA.CategoryOrder) != 2 || gotA.CategoryOrder[0] != "snacks" {
		t.Errorf("store A order = %v, want [snacks produce]", gotA.CategoryOrder)
	}

	gotB, _ := ss.GetByID(b.ID)
	if len(gotB.CategoryOrder) != len(catalog.DefaultsFor(model.StoreTypeGrocery).CategoryIDs) {
		t.Errorf("store B order changed: %v", gotB.CategoryOrder)
	}
}

func TestStoreReorderAcceptsNonPermutation(t *testing.T) {
	ss := setupStoreTestDB(t)

	st, _ := ss.Create("A", model.StoreTypePharmacy, testLocation, nil)

	// Duplicates and dropped ids are accepted wholesale; callers own validity.
	order := []string{"medicine", "medicine", "beauty"}
	if err := ss.ReorderCategories(st.ID, order); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	got, _ := ss.GetByID(st.ID)
	if len(got.CategoryOrder) != 3 || got.CategoryOrder[1] != "medicine" {
		t.Errorf("order = %v, want %v", got.CategoryOrder, order)
	}
}

func TestStoreReorderAbsentNoop(t *testing.T) {
	ss := setupStoreTestDB(t)

	if err := ss.ReorderCategories("nope", []string{"produce"}); err != nil {
		t.Fatalf("reorder absent store: %v", err)
	}
}

func TestStoreCreateExplicitOrder(t *testing.T) {
	ss := setupStoreTestDB(t)

	order := []string{"garden", "tools"}
	st, err := ss.Create("Yard Depot", model.StoreTypeHardware, testLocation, order)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if len(st.CategoryOrder) != 2 || st.CategoryOrder[0] != "garden" {
		t.Errorf("order = %v, want %v", st.CategoryOrder, order)
	}
}

func TestStoreCreateUnknownType(t *testing.T) {
	ss := setupStoreTestDB(t)

	st, err := ss.Create("Bazaar", model.StoreType("Bazaar"), testLocation, nil)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if len(st.CategoryOrder) != 0 {
		t.Errorf("expected empty order for unknown type, got %v", st.CategoryOrder)
	}
}

func TestStoreUpdatePartial(t *testing.T) {
	ss := setupStoreTestDB(t)

	st, _ := ss.Create("Corner Grocer", model.StoreTypeGrocery, testLocation, nil)

	name := "Main St Grocer"
	updated, err := ss.Update(st.ID, StoreUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update store: %v", err)
	}
	if updated.Name != "Main St Grocer" {
		t.Errorf("name = %q, want %q", updated.Name, "Main St Grocer")
	}
	if updated.Type != model.StoreTypeGrocery {
		t.Errorf("type changed: %q", updated.Type)
	}
	if updated.Location.Address != testLocation.Address {
		t.Errorf("location changed: %+v", updated.Location)
	}
}

func TestStoreUpdateTypeKeepsOrder(t *testing.T) {
	ss := setupStoreTestDB(t)

	st, _ := ss.Create("Corner Grocer", model.StoreTypeGrocery, testLocation, nil)

	typ := model.StoreTypePharmacy
	updated, err := ss.Update(st.ID, StoreUpdate{Type: &typ})
	if err != nil {
		t.Fatalf("update store: %v", err)
	}
	if updated.Type != model.StoreTypePharmacy {
		t.Errorf("type = %q, want Pharmacy", updated.Type)
	}
	// Changing the type never reseeds the aisle order.
	if len(updated.CategoryOrder) == 0 || updated.CategoryOrder[0] != "produce" {
		t.Errorf("order was reseeded: %v", updated.CategoryOrder)
	}
}

func TestStoreUpdateNotFound(t *testing.T) {
	ss := setupStoreTestDB(t)

	name := "X"
	updated, err := ss.Update("nope", StoreUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update store: %v", err)
	}
	if updated != nil {
		t.Error("expected nil for nonexistent store")
	}
}

func TestStoreDelete(t *testing.T) {
	ss := setupStoreTestDB(t)

	st, _ := ss.Create("Corner Grocer", model.StoreTypeGrocery, testLocation, nil)
	if err := ss.Delete(st.ID); err != nil {
		t.Fatalf("delete store: %v", err)
	}
	got, err := ss.GetByID(st.ID)
	if err != nil {
		t.Fatalf("get deleted store: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted store")
	}

	if err := ss.Delete("nope"); err != nil {
		t.Fatalf("delete absent store: %v", err)
	}
}

func TestStoreListSortedByName(t *testing.T) {
	ss := setupStoreTestDB(t)

	ss.Create("zeta mart", model.StoreTypeGrocery, testLocation, nil)
	ss.Create("Acme Pharmacy", model.StoreTypePharmacy, testLocation, nil)

	stores, err := ss.List()
	if err != nil {
		t.Fatalf("list stores: %v", err)
	}
	if len(stores) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(stores))
	}
	if stores[0].Name != "Acme Pharmacy" || stores[1].Name != "zeta mart" {
		t.Errorf("order = [%q, %q], want case-insensitive name order", stores[0].Name, stores[1].Name)
	}
}
