package store

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// setupTestStore opens an in-memory SQLite database with the same two-table
// schema the server creates on MySQL. The store's queries are written
// against the shared SQL subset of both engines.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // every :memory: connection is its own database
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			slug TEXT NOT NULL DEFAULT '',
			category TEXT,
			price DECIMAL(12,2) NOT NULL DEFAULT 0,
			stock INTEGER NOT NULL DEFAULT 0,
			added_date DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE sales (
			sale_id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			total_price DECIMAL(12,2) NOT NULL,
			sale_date DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
		)`,
	}
	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return New(db)
}

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestAddProductAndGetByID(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.AddProduct("Widget", "Tools", price(t, "9.99"), 50)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	got, err := s.ProductByID(id)
	require.NoError(t, err)
	require.Equal(t, "Widget", got.Name)
	require.Equal(t, "widget", got.Slug)
	require.Equal(t, "Tools", got.Category)
	require.True(t, got.Price.Equal(price(t, "9.99")), "price = %s", got.Price)
	require.Equal(t, 50, got.Stock)
	require.False(t, got.AddedDate.IsZero())
}

func TestAddProductValidation(t *testing.T) {
	s := setupTestStore(t)

	cases := []struct {
		name     string
		prodName string
		price    decimal.Decimal
		stock    int
	}{
		{"empty name", "", price(t, "1.00"), 1},
		{"negative price", "Widget", price(t, "-0.01"), 1},
		{"negative stock", "Widget", price(t, "1.00"), -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddProduct(tc.prodName, "Tools", tc.price, tc.stock)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}

	products, err := s.Products()
	require.NoError(t, err)
	require.Empty(t, products, "rejected products must not be stored")
}

func TestProductsOrderedByID(t *testing.T) {
	s := setupTestStore(t)

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		_, err := s.AddProduct(name, "Misc", price(t, "1.00"), 1)
		require.NoError(t, err)
	}

	products, err := s.Products()
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i, p := range products {
		require.Equal(t, int64(i+1), p.ID)
	}
}

func TestProductByIDNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.ProductByID(42)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestIncreaseStock(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.AddProduct("Widget", "Tools", price(t, "2.50"), 5)
	require.NoError(t, err)

	ok, err := s.IncreaseStock(id, 7)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.ProductByID(id)
	require.NoError(t, err)
	require.Equal(t, 12, got.Stock)

	ok, err = s.IncreaseStock(999, 1)
	require.NoError(t, err)
	require.False(t, ok, "missing product is a no-op, not an error")

	_, err = s.IncreaseStock(id, 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSetStock(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.AddProduct("Widget", "Tools", price(t, "2.50"), 5)
	require.NoError(t, err)

	ok, err := s.SetStock(id, 0)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.ProductByID(id)
	require.NoError(t, err)
	require.Equal(t, 0, got.Stock)

	_, err = s.SetStock(id, -1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	ok, err = s.SetStock(999, 3)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeleteProductCascadesSales(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.AddProduct("Widget", "Tools", price(t, "9.99"), 50)
	require.NoError(t, err)

	_, err = s.RecordSale(context.Background(), id, 5)
	require.NoError(t, err)
	require.Equal(t, 1, countSales(t, s))

	ok, err := s.DeleteProduct(id)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = s.ProductByID(id)
	require.ErrorIs(t, err, ErrProductNotFound)
	require.Equal(t, 0, countSales(t, s), "sales must cascade with their product")

	ok, err = s.DeleteProduct(id)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLowStock(t *testing.T) {
	s := setupTestStore(t)

	seed := []struct {
		name  string
		stock int
	}{
		{"Plenty", 40},
		{"Borderline", 10},
		{"Short", 9},
		{"Gone", 0},
		{"Scarce", 3},
	}
	for _, p := range seed {
		_, err := s.AddProduct(p.name, "Misc", price(t, "1.00"), p.stock)
		require.NoError(t, err)
	}

	low, err := s.LowStock(10)
	require.NoError(t, err)

	var names []string
	lastStock := -1
	for _, p := range low {
		require.Less(t, p.Stock, 10)
		require.GreaterOrEqual(t, p.Stock, lastStock, "results must ascend by stock")
		lastStock = p.Stock
		names = append(names, p.Name)
	}
	require.ElementsMatch(t, []string{"Short", "Gone", "Scarce"}, names)
}

func countSales(t *testing.T, s *Store) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB.QueryRow("SELECT COUNT(*) FROM sales").Scan(&n))
	return n
}
