// Package store is the data-access layer over the products and sales tables.
// Every method is a single unit of work against the injected *sql.DB; the
// only multi-statement operation, RecordSale, runs inside its own
// transaction.
package store

import (
	"database/sql"
	"errors"

	"github.com/01moynul/stocktrack-golang/internal/models"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Store holds the shared connection pool. Construct it once at startup and
// inject it into whatever serves requests.
type Store struct {
	DB *sql.DB
}

// New creates a Store around an already-opened connection pool.
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// AddProduct inserts a new product and returns its assigned id.
// Name must be non-empty and price/stock non-negative.
func (s *Store) AddProduct(name, category string, price decimal.Decimal, stock int) (int64, error) {
	if name == "" {
		return 0, &ValidationError{Reason: "name must not be empty"}
	}
	if price.IsNegative() {
		return 0, &ValidationError{Reason: "price must not be negative"}
	}
	if stock < 0 {
		return 0, &ValidationError{Reason: "stock must not be negative"}
	}

	query := `
		INSERT INTO products
		(name, slug, category, price, stock)
		VALUES
		(?, ?, ?, ?, ?)`

	result, err := s.DB.Exec(query, name, slug.Make(name), category, price, stock)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Products returns all products ordered by id ascending.
func (s *Store) Products() ([]models.Product, error) {
	query := `
		SELECT id, name, slug, category, price, stock, added_date
		FROM products
		ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ProductByID returns one product, or ErrProductNotFound.
func (s *Store) ProductByID(id int64) (*models.Product, error) {
	query := `
		SELECT id, name, slug, category, price, stock, added_date
		FROM products
		WHERE id = ?`

	var p models.Product
	err := s.DB.QueryRow(query, id).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Category, &p.Price, &p.Stock, &p.AddedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// IncreaseStock adds amount (> 0) to a product's stock. It reports false,
// without error, when the product does not exist.
func (s *Store) IncreaseStock(id int64, amount int) (bool, error) {
	if amount <= 0 {
		return false, &ValidationError{Reason: "amount must be positive"}
	}

	result, err := s.DB.Exec("UPDATE products SET stock = stock + ? WHERE id = ?", amount, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetStock overwrites a product's stock with an absolute value (>= 0).
// It reports false, without error, when the product does not exist.
func (s *Store) SetStock(id int64, value int) (bool, error) {
	if value < 0 {
		return false, &ValidationError{Reason: "stock must not be negative"}
	}

	result, err := s.DB.Exec("UPDATE products SET stock = ? WHERE id = ?", value, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteProduct removes a product; its sales go with it via the foreign-key
// cascade. It reports false when the product does not exist.
func (s *Store) DeleteProduct(id int64) (bool, error) {
	result, err := s.DB.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// LowStock returns products with stock strictly below threshold, ascending
// by stock, so the most urgent restocks come first.
func (s *Store) LowStock(threshold int) ([]models.Product, error) {
	query := `
		SELECT id, name, slug, category, price, stock, added_date
		FROM products
		WHERE stock < ?
		ORDER BY stock`

	rows, err := s.DB.Query(query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Category, &p.Price, &p.Stock, &p.AddedDate,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
