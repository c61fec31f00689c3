package model

type StoreType string

const (
	StoreTypeGrocery     StoreType = "Grocery"
	StoreTypePharmacy    StoreType = "Pharmacy"
	StoreTypeHardware    StoreType = "Hardware"
	StoreTypeHypermarket StoreType = "Hypermarket"
)

type StoreLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Store is a retail store. CategoryOrder is the aisle sequence: category ids in
// the order the shopper walks past them. It is seeded from the per-type default
// at creation and independently mutable per store afterwards.
type Store struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          StoreType     `json:"type"`
	Location      StoreLocation `json:"location"`
	CategoryOrder []string      `json:"category_order"`
}
