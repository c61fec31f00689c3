package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/aisle/internal/model"
)

type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

func scanProduct(scanner interface{ Scan(...any) error }) (*model.Product, error) {
	var p model.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Quantity.Amount, &p.Quantity.Unit,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const productCols = `id, name, quantity_amount, quantity_unit, category_id, created_at, updated_at`

// Create inserts a new product. categoryID may be empty (uncategorized) and is
// not checked against the catalog.
func (s *ProductStore) Create(name string, quantity model.ProductQuantity, categoryID string) (*model.Product, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.Exec(
		`INSERT INTO products (id, name, quantity_amount, quantity_unit, category_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, quantity.Amount, quantity.Unit, categoryID, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return s.GetByID(id)
}

func (s *ProductStore) GetByID(id string) (*model.Product, error) {
	row := s.db.QueryRow(`SELECT `+productCols+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *ProductStore) List() ([]model.Product, error) {
	rows, err := s.db.Query(`SELECT ` + productCols + ` FROM products ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// ProductUpdate carries the fields to change; nil fields are left alone.
type ProductUpdate struct {
	Name       *string
	Quantity   *model.ProductQuantity
	CategoryID *string
}

// Update applies the non-nil fields and refreshes updated_at. ID and
// created_at are never touched. Returns nil, nil when the id is unknown.
func (s *ProductStore) Update(id string, upd ProductUpdate) (*model.Product, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Quantity != nil {
		p.Quantity = *upd.Quantity
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}

	_, err = s.db.Exec(
		`UPDATE products SET name = ?, quantity_amount = ?, quantity_unit = ?, category_id = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Quantity.Amount, p.Quantity.Unit, p.CategoryID, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes a product. Absent ids are a no-op, and the product's list
// items are deliberately left behind.
func (s *ProductStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
