// Package view holds the stateless aggregation, grouping and filtering
// helpers the presentation layer renders from. Everything here is a pure
// function over slices the caller already fetched; nothing touches storage.
package view

import (
	"sort"
	"strings"

	"github.com/dukerupert/aisle/internal/catalog"
	"github.com/dukerupert/aisle/internal/model"
)

// Progress summarizes checked-off items for one list's membership rows.
// Fraction is 0 for an empty list, never NaN.
func Progress(items []model.ShoppingListItem) (completed, total int, fraction float64) {
	total = len(items)
	for _, item := range items {
		if item.IsChecked {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	return completed, total, float64(completed) / float64(total)
}

// CategoryGroup is one rendered bucket of products.
type CategoryGroup struct {
	CategoryID string
	Title      string
	Products   []model.Product
}

// GroupByCategory partitions products by category id, buckets in first-seen
// order and products in input order. Empty or unknown category ids land in the
// uncategorized bucket.
func GroupByCategory(products []model.Product) []CategoryGroup {
	index := map[string]int{}
	var groups []CategoryGroup
	for _, p := range products {
		id := p.CategoryID
		if id == "" {
			id = catalog.UncategorizedID
		}
		i, ok := index[id]
		if !ok {
			title := "Uncategorized"
			if c, ok := catalog.ByID(id); ok {
				title = c.Name
			}
			i = len(groups)
			index[id] = i
			groups = append(groups, CategoryGroup{CategoryID: id, Title: title})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

// SectionsByStoreOrder groups products following a store's aisle order.
// Ids the catalog does not know and aisles with no products are skipped;
// a duplicated id in the order yields a duplicated section, matching
// ReorderCategories' relaxed contract.
func SectionsByStoreOrder(products []model.Product, categoryOrder []string) []CategoryGroup {
	var groups []CategoryGroup
	for _, id := range categoryOrder {
		c, ok := catalog.ByID(id)
		if !ok {
			continue
		}
		var bucket []model.Product
		for _, p := range products {
			if p.CategoryID == id {
				bucket = append(bucket, p)
			}
		}
		if len(bucket) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{CategoryID: id, Title: c.Name, Products: bucket})
	}
	return groups
}

// FilterProducts keeps products whose name contains search (case-insensitive)
// and, when categoryID is non-empty, whose category matches exactly.
func FilterProducts(products []model.Product, search, categoryID string) []model.Product {
	needle := strings.ToLower(search)
	var out []model.Product
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterStores keeps stores whose name or address contains search,
// case-insensitive.
func FilterStores(stores []model.Store, search string) []model.Store {
	needle := strings.ToLower(search)
	var out []model.Store
	for _, st := range stores {
		if strings.Contains(strings.ToLower(st.Name), needle) ||
			strings.Contains(strings.ToLower(st.Location.Address), needle) {
			out = append(out, st)
		}
	}
	return out
}

// ProductsInList keeps the products that appear in the given membership rows,
// preserving product order.
func ProductsInList(products []model.Product, items []model.ShoppingListItem) []model.Product {
	member := map[string]bool{}
	for _, item := range items {
		member[item.ProductID] = true
	}
	var out []model.Product
	for _, p := range products {
		if member[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// ProductsNotInList is the complement of ProductsInList: the picker source for
// adding products to a list.
func ProductsNotInList(products []model.Product, items []model.ShoppingListItem) []model.Product {
	member := map[string]bool{}
	for _, item := range items {
		member[item.ProductID] = true
	}
	var out []model.Product
	for _, p := range products {
		if !member[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// CountCheckedProducts counts how many of the given products are checked in
// at least one list, for per-store progress headers.
func CountCheckedProducts(products []model.Product, items []model.ShoppingListItem) int {
	checked := map[string]bool{}
	for _, item := range items {
		if item.IsChecked {
			checked[item.ProductID] = true
		}
	}
	count := 0
	for _, p := range products {
		if checked[p.ID] {
			count++
		}
	}
	return count
}

// RecentFirst returns the lists sorted by updated_at, newest first. The input
// is not modified; ties keep their input order.
func RecentFirst(lists []model.ShoppingList) []model.ShoppingList {
	out := make([]model.ShoppingList, len(lists))
	copy(out, lists)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
