package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/aisle/internal/model"
)

// ListStore owns shopping lists and their membership rows. Any operation that
// changes a list's membership also bumps the list's updated_at so that
// "recently active" ordering reflects item activity, not just renames.
type ListStore struct {
	db *sql.DB
}

func NewListStore(db *sql.DB) *ListStore {
	return &ListStore{db: db}
}

// --- List methods ---

func scanShoppingList(scanner interface{ Scan(...any) error }) (*model.ShoppingList, error) {
	var l model.ShoppingList
	err := scanner.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const listCols = `id, name, created_at, updated_at`

func (s *ListStore) Create(name string) (*model.ShoppingList, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.Exec(
		`INSERT INTO shopping_lists (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, name, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	return s.GetByID(id)
}

func (s *ListStore) GetByID(id string) (*model.ShoppingList, error) {
	row := s.db.QueryRow(`SELECT `+listCols+` FROM shopping_lists WHERE id = ?`, id)
	l, err := scanShoppingList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	return l, nil
}

func (s *ListStore) List() ([]model.ShoppingList, error) {
	rows, err := s.db.Query(`SELECT ` + listCols + ` FROM shopping_lists ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	var lists []model.ShoppingList
	for rows.Next() {
		l, err := scanShoppingList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

type ListUpdate struct {
	Name *string
}

func (s *ListStore) Update(id string, upd ListUpdate) (*model.ShoppingList, error) {
	l, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}

	if upd.Name != nil {
		l.Name = *upd.Name
	}

	_, err = s.db.Exec(
		`UPDATE shopping_lists SET name = ?, updated_at = ? WHERE id = ?`,
		l.Name, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes a list and all of its items. This is the one enforced
// cascade in the model; items in other lists are untouched.
func (s *ListStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM shopping_list_items WHERE shopping_list_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete list items: %w", err)
	}
	_, err = s.db.Exec(`DELETE FROM shopping_lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

// --- Item methods ---

func scanListItem(scanner interface{ Scan(...any) error }) (*model.ShoppingListItem, error) {
	var item model.ShoppingListItem
	var checked int

	err := scanner.Scan(&item.ID, &item.ShoppingListID, &item.ProductID, &checked, &item.AddedAt)
	if err != nil {
		return nil, err
	}
	item.IsChecked = checked != 0
	return &item, nil
}

const itemCols = `id, shopping_list_id, product_id, is_checked, added_at`

// AddProduct adds a product to a list. Returns nil, nil when the list does not
// exist or the product is already on it; in both cases nothing changes.
func (s *ListStore) AddProduct(listID, productID string) (*model.ShoppingListItem, error) {
	l, err := s.GetByID(listID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	result, err := s.db.Exec(
		`INSERT INTO shopping_list_items (id, shopping_list_id, product_id, is_checked, added_at) VALUES (?, ?, ?, 0, ?)
		 ON CONFLICT (shopping_list_id, product_id) DO NOTHING`,
		id, listID, productID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert list item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		// Already on the list; the pair invariant holds and updated_at stays.
		return nil, nil
	}

	if err := s.touch(listID, now); err != nil {
		return nil, err
	}
	return s.item(listID, productID)
}

// RemoveProduct deletes the matching item if present. The list's updated_at is
// bumped whether or not anything was removed.
func (s *ListStore) RemoveProduct(listID, productID string) error {
	_, err := s.db.Exec(
		`DELETE FROM shopping_list_items WHERE shopping_list_id = ? AND product_id = ?`,
		listID, productID,
	)
	if err != nil {
		return fmt.Errorf("remove list item: %w", err)
	}
	return s.touch(listID, time.Now().UTC())
}

// ToggleChecked flips the checked state of the matching item if present. The
// list's updated_at is bumped either way.
func (s *ListStore) ToggleChecked(listID, productID string) error {
	_, err := s.db.Exec(
		`UPDATE shopping_list_items SET is_checked = 1 - is_checked WHERE shopping_list_id = ? AND product_id = ?`,
		listID, productID,
	)
	if err != nil {
		return fmt.Errorf("toggle checked: %w", err)
	}
	return s.touch(listID, time.Now().UTC())
}

// IsChecked reports the checked state of the pair; false when it is absent.
func (s *ListStore) IsChecked(listID, productID string) (bool, error) {
	var checked int
	err := s.db.QueryRow(
		`SELECT is_checked FROM shopping_list_items WHERE shopping_list_id = ? AND product_id = ?`,
		listID, productID,
	).Scan(&checked)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("is checked: %w", err)
	}
	return checked != 0, nil
}

func (s *ListStore) Items(listID string) ([]model.ShoppingListItem, error) {
	rows, err := s.db.Query(
		`SELECT `+itemCols+` FROM shopping_list_items WHERE shopping_list_id = ? ORDER BY added_at ASC`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.ShoppingListItem
	for rows.Next() {
		item, err := scanListItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// AllItems returns every membership row across all lists, for cross-list
// views like per-store shopping progress.
func (s *ListStore) AllItems() ([]model.ShoppingListItem, error) {
	rows, err := s.db.Query(`SELECT ` + itemCols + ` FROM shopping_list_items ORDER BY added_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all items: %w", err)
	}
	defer rows.Close()

	var items []model.ShoppingListItem
	for rows.Next() {
		item, err := scanListItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *ListStore) item(listID, productID string) (*model.ShoppingListItem, error) {
	row := s.db.QueryRow(
		`SELECT `+itemCols+` FROM shopping_list_items WHERE shopping_list_id = ? AND product_id = ?`,
		listID, productID,
	)
	item, err := scanListItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get list item: %w", err)
	}
	return item, nil
}

func (s *ListStore) touch(listID string, at time.Time) error {
	_, err := s.db.Exec(`UPDATE shopping_lists SET updated_at = ? WHERE id = ?`, at, listID)
	if err != nil {
		return fmt.Errorf("touch list: %w", err)
	}
	return nil
}
