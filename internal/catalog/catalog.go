// Package catalog holds the static category reference data: the catalog
// itself, keyword-based category suggestion, and per-store-type defaults.
// Nothing in here mutates after process start.
package catalog

import "github.com/dukerupert/aisle/internal/model"

// UncategorizedID is the sentinel bucket for products with an empty or
// unresolvable category id.
const UncategorizedID = "uncategorized"

// categories is the full catalog in definition order. Keywords are lowercase;
// matching is substring-based, so short keywords are deliberately avoided.
var categories = []model.Category{
	{
		ID:          "produce",
		Name:        "Produce",
		Keywords:    []string{"apple", "banana", "orange", "tomato", "lettuce", "carrot", "onion", "potato", "fruit", "vegetable"},
		DefaultUnit: "kg",
		Icon:        "leaf",
		Color:       "#34C759",
	},
	{
		ID:          "dairy",
		Name:        "Dairy",
		Keywords:    []string{"milk", "cheese", "yogurt", "butter", "cream", "egg"},
		DefaultUnit: "l",
		Icon:        "water",
		Color:       "#5AC8FA",
	},
	{
		ID:          "meat",
		Name:        "Meat & Fish",
		Keywords:    []string{"chicken", "beef", "pork", "fish", "salmon", "sausage", "ham", "turkey"},
		DefaultUnit: "kg",
		Icon:        "restaurant",
		Color:       "#FF3B30",
	},
	{
		ID:          "bakery",
		Name:        "Bakery",
		Keywords:    []string{"bread", "baguette", "croissant", "bun", "bagel", "muffin", "cake"},
		DefaultUnit: "pcs",
		Icon:        "basket",
		Color:       "#FF9500",
	},
	{
		ID:          "beverages",
		Name:        "Beverages",
		Keywords:    []string{"juice", "soda", "cola", "coffee", "tea", "beer", "wine", "water"},
		DefaultUnit: "l",
		Icon:        "beer",
		Color:       "#AF52DE",
	},
	{
		ID:          "frozen",
		Name:        "Frozen",
		Keywords:    []string{"frozen", "ice cream", "pizza"},
		DefaultUnit: "pcs",
		Icon:        "snow",
		Color:       "#5AC8FA",
	},
	{
		ID:          "pantry",
		Name:        "Pantry",
		Keywords:    []string{"rice", "pasta", "flour", "sugar", "salt", "oil", "sauce", "cereal", "bean", "canned"},
		DefaultUnit: "pcs",
		Icon:        "archive",
		Color:       "#A2845E",
	},
	{
		ID:          "snacks",
		Name:        "Snacks",
		Keywords:    []string{"chips", "chocolate", "candy", "cookie", "cracker", "popcorn", "nuts"},
		DefaultUnit: "pcs",
		Icon:        "fast-food",
		Color:       "#FF9500",
	},
	{
		ID:          "household",
		Name:        "Household",
		Keywords:    []string{"detergent", "cleaner", "paper towel", "trash bag", "sponge", "bleach", "foil"},
		DefaultUnit: "pcs",
		Icon:        "home",
		Color:       "#8E8E93",
	},
	{
		ID:          "personal-care",
		Name:        "Personal Care",
		Keywords:    []string{"shampoo", "toothpaste", "deodorant", "soap", "razor", "lotion"},
		DefaultUnit: "pcs",
		Icon:        "body",
		Color:       "#FF2D55",
	},
	{
		ID:          "medicine",
		Name:        "Medicine",
		Keywords:    []string{"aspirin", "ibuprofen", "paracetamol", "cough", "cold relief", "painkiller"},
		DefaultUnit: "pcs",
		Icon:        "medkit",
		Color:       "#FF3B30",
	},
	{
		ID:          "vitamins",
		Name:        "Vitamins",
		Keywords:    []string{"vitamin", "supplement", "omega", "zinc", "magnesium"},
		DefaultUnit: "pcs",
		Icon:        "fitness",
		Color:       "#34C759",
	},
	{
		ID:          "first-aid",
		Name:        "First Aid",
		Keywords:    []string{"bandage", "plaster", "gauze", "antiseptic", "thermometer"},
		DefaultUnit: "pcs",
		Icon:        "bandage",
		Color:       "#FF3B30",
	},
	{
		ID:          "beauty",
		Name:        "Beauty",
		Keywords:    []string{"makeup", "mascara", "lipstick", "nail polish", "perfume"},
		DefaultUnit: "pcs",
		Icon:        "flower",
		Color:       "#FF2D55",
	},
	{
		ID:          "tools",
		Name:        "Tools",
		Keywords:    []string{"hammer", "screwdriver", "drill", "wrench", "saw", "pliers", "tape measure"},
		DefaultUnit: "pcs",
		Icon:        "hammer",
		Color:       "#FF9500",
	},
	{
		ID:          "hardware",
		Name:        "Hardware",
		Keywords:    []string{"screw", "nail", "bolt", "hinge", "bracket", "anchor"},
		DefaultUnit: "pcs",
		Icon:        "construct",
		Color:       "#8E8E93",
	},
	{
		ID:          "paint",
		Name:        "Paint",
		Keywords:    []string{"paint", "primer", "varnish", "brush", "roller", "stain"},
		DefaultUnit: "l",
		Icon:        "color-palette",
		Color:       "#AF52DE",
	},
	{
		ID:          "electrical",
		Name:        "Electrical",
		Keywords:    []string{"bulb", "battery", "cable", "wire", "socket", "switch", "fuse"},
		DefaultUnit: "pcs",
		Icon:        "flash",
		Color:       "#FFCC00",
	},
	{
		ID:          "plumbing",
		Name:        "Plumbing",
		Keywords:    []string{"pipe", "faucet", "valve", "drain", "washer", "sealant"},
		DefaultUnit: "pcs",
		Icon:        "water-outline",
		Color:       "#007AFF",
	},
	{
		ID:          "garden",
		Name:        "Garden",
		Keywords:    []string{"soil", "seed", "fertilizer", "hose", "mulch", "shovel", "planter"},
		DefaultUnit: "pcs",
		Icon:        "rose",
		Color:       "#34C759",
	},
}

// All returns the catalog in definition order. The returned slice is a copy;
// the entries themselves are shared and must be treated as read-only.
func All() []model.Category {
	out := make([]model.Category, len(categories))
	copy(out, categories)
	return out
}

// ByID looks up a catalog entry. ok is false for unknown ids.
func ByID(id string) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// ByIDs resolves ids in the given order, silently skipping unknown ones.
func ByIDs(ids []string) []model.Category {
	out := make([]model.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := ByID(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// Visual returns the icon and color for a category id, falling back to a
// neutral tag for empty, unknown or uncategorized ids.
func Visual(id string) model.CategoryVisual {
	if c, ok := ByID(id); ok {
		return model.CategoryVisual{Icon: c.Icon, Color: c.Color}
	}
	return model.CategoryVisual{Icon: "pricetag", Color: "#8E8E93"}
}
