// Command aisle is a stand-in for the app's presentation layer: it wires up
// the domain core against an in-memory database, walks through a shopping
// trip, and prints what a UI would render.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dukerupert/aisle/internal/catalog"
	"github.com/dukerupert/aisle/internal/database"
	"github.com/dukerupert/aisle/internal/logging"
	"github.com/dukerupert/aisle/internal/model"
	"github.com/dukerupert/aisle/internal/store"
	"github.com/dukerupert/aisle/internal/view"
)

func main() {
	logging.Setup(os.Getenv("AISLE_LOG_LEVEL"))

	dbPath := os.Getenv("AISLE_DB_PATH")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	products := store.NewProductStore(db)
	lists := store.NewListStore(db)
	stores := store.NewStoreStore(db)

	if err := run(products, lists, stores); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(products *store.ProductStore, lists *store.ListStore, stores *store.StoreStore) error {
	// Create products, letting the catalog suggest categories and units.
	names := []struct {
		name   string
		amount float64
	}{
		{"Whole Milk", 1},
		{"Sourdough Bread", 1},
		{"Apples", 1.5},
		{"Frozen Pizza", 2},
		{"Paper Towels", 6},
	}
	var created []model.Product
	for _, n := range names {
		categoryID, unit := "", "pcs"
		if s := catalog.Suggest(n.name); s != nil {
			categoryID, unit = s.CategoryID, s.Unit
			slog.Debug("category suggested", "product", n.name, "category", s.CategoryID, "confidence", s.Confidence)
		}
		p, err := products.Create(n.name, model.ProductQuantity{Amount: n.amount, Unit: unit}, categoryID)
		if err != nil {
			return err
		}
		created = append(created, *p)
	}

	list, err := lists.Create("Saturday run")
	if err != nil {
		return err
	}
	for _, p := range created[:4] {
		if _, err := lists.AddProduct(list.ID, p.ID); err != nil {
			return err
		}
	}

	grocer, err := stores.Create("Corner Grocer", model.StoreTypeGrocery,
		model.StoreLocation{Latitude: 47.6097, Longitude: -122.3331, Address: "1916 Pike Pl"}, nil)
	if err != nil {
		return err
	}

	// Tick off the first two items.
	for _, p := range created[:2] {
		if err := lists.ToggleChecked(list.ID, p.ID); err != nil {
			return err
		}
	}

	items, err := lists.Items(list.ID)
	if err != nil {
		return err
	}
	list, err = lists.GetByID(list.ID)
	if err != nil {
		return err
	}

	completed, total, fraction := view.Progress(items)
	fmt.Printf("%s — %d/%d done (%.0f%%), updated %s\n\n",
		list.Name, completed, total, fraction*100, view.FormatRelativeTime(time.Now().UTC(), list.UpdatedAt))

	all, err := products.List()
	if err != nil {
		return err
	}
	inList := view.ProductsInList(all, items)
	for _, section := range view.SectionsByStoreOrder(inList, grocer.CategoryOrder) {
		fmt.Printf("%s\n", section.Title)
		for _, p := range section.Products {
			mark := " "
			checked, err := lists.IsChecked(list.ID, p.ID)
			if err != nil {
				return err
			}
			if checked {
				mark = "x"
			}
			fmt.Printf("  [%s] %s (%s)\n", mark, p.Name, view.FormatQuantity(p.Quantity))
		}
	}
	for _, group := range view.GroupByCategory(view.ProductsNotInList(all, items)) {
		fmt.Printf("\nNot on the list — %s\n", group.Title)
		for _, p := range group.Products {
			fmt.Printf("      %s (%s)\n", p.Name, view.FormatQuantity(p.Quantity))
		}
	}
	return nil
}
