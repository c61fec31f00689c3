package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukerupert/aisle/internal/catalog"
	"github.com/dukerupert/aisle/internal/model"
)

// StoreStore owns the retail stores. The category order lives in a JSON TEXT
// column, so every read hands the caller its own copy of the slice.
type StoreStore struct {
	db *sql.DB
}

func NewStoreStore(db *sql.DB) *StoreStore {
	return &StoreStore{db: db}
}

func scanStore(scanner interface{ Scan(...any) error }) (*model.Store, error) {
	var st model.Store
	var typ string
	var orderJSON string

	err := scanner.Scan(
		&st.ID, &st.Name, &typ,
		&st.Location.Latitude, &st.Location.Longitude, &st.Location.Address,
		&orderJSON,
	)
	if err != nil {
		return nil, err
	}
	st.Type = model.StoreType(typ)
	if err := json.Unmarshal([]byte(orderJSON), &st.CategoryOrder); err != nil {
		return nil, fmt.Errorf("decode category order: %w", err)
	}
	return &st, nil
}

const storeCols = `id, name, type, latitude, longitude, address, category_order`

func encodeOrder(order []string) (string, error) {
	if order == nil {
		order = []string{}
	}
	b, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("encode category order: %w", err)
	}
	return string(b), nil
}

// Create inserts a new store. When categoryOrder is nil the order is seeded
// from the store type's default; the seed is a copy, so reordering this store
// later never leaks into the static defaults or other stores.
func (s *StoreStore) Create(name string, typ model.StoreType, loc model.StoreLocation, categoryOrder []string) (*model.Store, error) {
	if categoryOrder == nil {
		categoryOrder = catalog.DefaultsFor(typ).CategoryIDs
	}
	orderJSON, err := encodeOrder(categoryOrder)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO stores (id, name, type, latitude, longitude, address, category_order) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, string(typ), loc.Latitude, loc.Longitude, loc.Address, orderJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("insert store: %w", err)
	}
	return s.GetByID(id)
}

func (s *StoreStore) GetByID(id string) (*model.Store, error) {
	row := s.db.QueryRow(`SELECT `+storeCols+` FROM stores WHERE id = ?`, id)
	st, err := scanStore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	return st, nil
}

func (s *StoreStore) List() ([]model.Store, error) {
	rows, err := s.db.Query(`SELECT ` + storeCols + ` FROM stores ORDER BY name COLLATE NOCASE ASC`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []model.Store
	for rows.Next() {
		st, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, *st)
	}
	return stores, rows.Err()
}

type StoreUpdate struct {
	Name          *string
	Type          *model.StoreType
	Location      *model.StoreLocation
	CategoryOrder *[]string
}

// Update applies the non-nil fields. Changing the type does not reseed the
// category order. Returns nil, nil when the id is unknown.
func (s *StoreStore) Update(id string, upd StoreUpdate) (*model.Store, error) {
	st, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, nil
	}

	if upd.Name != nil {
		st.Name = *upd.Name
	}
	if upd.Type != nil {
		st.Type = *upd.Type
	}
	if upd.Location != nil {
		st.Location = *upd.Location
	}
	if upd.CategoryOrder != nil {
		st.CategoryOrder = *upd.CategoryOrder
	}

	orderJSON, err := encodeOrder(st.CategoryOrder)
	if err != nil {
		return nil, err
	}
	_, err = s.db.Exec(
		`UPDATE stores SET name = ?, type = ?, latitude = ?, longitude = ?, address = ?, category_order = ? WHERE id = ?`,
		st.Name, string(st.Type), st.Location.Latitude, st.Location.Longitude, st.Location.Address, orderJSON, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	return s.GetByID(id)
}

// ReorderCategories replaces the store's aisle order wholesale. The new order
// is not validated against the old one; duplicates and unknown ids are the
// caller's to avoid. Absent ids are a no-op.
func (s *StoreStore) ReorderCategories(storeID string, newOrder []string) error {
	orderJSON, err := encodeOrder(newOrder)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`UPDATE stores SET category_order = ? WHERE id = ?`, orderJSON, storeID)
	if err != nil {
		return fmt.Errorf("reorder categories: %w", err)
	}
	return nil
}

func (s *StoreStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}
