package catalog

import (
	"strings"

	"github.com/dukerupert/aisle/internal/model"
)

// Suggestion is a best-guess category for a free-text product name.
type Suggestion struct {
	CategoryID string  `json:"category_id"`
	Unit       string  `json:"unit"`
	Confidence float64 `json:"confidence"`
}

// Suggest maps a product name to the catalog category whose keywords best
// match it. Matching is case-insensitive substring containment, so partial
// words count ("milkshake" matches "milk"). Confidence is the match count
// capped at three keywords. Returns nil when the name is blank or no keyword
// matches. Deterministic: ties go to the category defined first.
func Suggest(productName string) *Suggestion {
	name := strings.ToLower(strings.TrimSpace(productName))
	if name == "" {
		return nil
	}

	bestCount := 0
	var best *model.Category
	for i := range categories {
		count := 0
		for _, kw := range categories[i].Keywords {
			if strings.Contains(name, strings.ToLower(kw)) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = &categories[i]
		}
	}
	if best == nil {
		return nil
	}

	unit := best.DefaultUnit
	if unit == "" {
		unit = "pcs"
	}
	confidence := float64(bestCount) / 3
	if confidence > 1 {
		confidence = 1
	}
	return &Suggestion{CategoryID: best.ID, Unit: unit, Confidence: confidence}
}
