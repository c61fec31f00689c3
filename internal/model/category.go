package model

// Category is a static catalog entry. The catalog is defined in Go source and
// never changes at runtime; entities reference categories by id only.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords"`
	DefaultUnit string   `json:"default_unit"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
}

type CategoryVisual struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
