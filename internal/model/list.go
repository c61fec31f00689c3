package model

import "time"

// ShoppingList.UpdatedAt is a liveness signal: it moves whenever the list's own
// fields change and whenever its membership changes (items added, removed or
// toggled), so "recently active" ordering stays meaningful.
type ShoppingList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShoppingListItem records membership of one product in one list. At most one
// item exists per (list, product) pair.
type ShoppingListItem struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	ShoppingListID string    `json:"shopping_list_id"`
	IsChecked      bool      `json:"is_checked"`
	AddedAt        time.Time `json:"added_at"`
}
