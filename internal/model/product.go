package model

import "time"

type ProductQuantity struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Product belongs to at most one category. CategoryID may be empty or point at
// an id the catalog no longer knows; consumers treat both as uncategorized.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Quantity   ProductQuantity `json:"quantity"`
	CategoryID string          `json:"category_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
