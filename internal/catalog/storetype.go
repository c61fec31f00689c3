package catalog

import "github.com/dukerupert/aisle/internal/model"

// TypeDefaults is the preset for one kind of retail store: the aisle order a
// new store starts with, plus its visual theme.
type TypeDefaults struct {
	CategoryIDs []string `json:"category_ids"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
}

var storeTypeDefaults = map[model.StoreType]TypeDefaults{
	model.StoreTypeGrocery: {
		CategoryIDs: []string{"produce", "dairy", "meat", "bakery", "beverages", "frozen", "pantry", "snacks"},
		Icon:        "cart",
		Color:       "#34C759",
	},
	model.StoreTypePharmacy: {
		CategoryIDs: []string{"personal-care", "medicine", "vitamins", "first-aid", "beauty"},
		Icon:        "medkit",
		Color:       "#FF3B30",
	},
	model.StoreTypeHardware: {
		CategoryIDs: []string{"tools", "hardware", "paint", "electrical", "plumbing", "garden"},
		Icon:        "hammer",
		Color:       "#FF9500",
	},
	model.StoreTypeHypermarket: {
		CategoryIDs: []string{"beverages", "snacks", "dairy", "bakery", "personal-care"},
		Icon:        "storefront",
		Color:       "#007AFF",
	},
}

// DefaultsFor returns the preset for a store type. The CategoryIDs slice is a
// fresh copy on every call: callers seed mutable per-store orders from it and
// must never alias the static data. Unknown types get an empty order and a
// generic storefront visual.
func DefaultsFor(t model.StoreType) TypeDefaults {
	d, ok := storeTypeDefaults[t]
	if !ok {
		return TypeDefaults{Icon: "storefront", Color: "#8E8E93"}
	}
	ids := make([]string, len(d.CategoryIDs))
	copy(ids, d.CategoryIDs)
	d.CategoryIDs = ids
	return d
}

// StoreTypes lists the known types in a stable display order.
func StoreTypes() []model.StoreType {
	return []model.StoreType{
		model.StoreTypeGrocery,
		model.StoreTypePharmacy,
		model.StoreTypeHardware,
		model.StoreTypeHypermarket,
	}
}
