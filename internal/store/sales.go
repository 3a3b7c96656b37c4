package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/01moynul/stocktrack-golang/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the stock level below which a product counts
// as needing a restock, unless the caller asks for a different cutoff.
const DefaultLowStockThreshold = 10

// RecordSale sells quantity units of a product: it captures the total price
// at today's unit price, inserts the sale row and decrements stock, all in
// one transaction. Either both writes commit or neither does.
//
// The decrement is conditional on the remaining stock, so two concurrent
// sales of the same product can never drive stock negative: the slower one
// fails the row-count check and is rolled back.
func (s *Store) RecordSale(ctx context.Context, productID int64, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, &ValidationError{Reason: "quantity must be positive"}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback() // Safety net

	// 1. --- Read the current price and stock ---
	var price decimal.Decimal
	var stock int
	err = tx.QueryRow("SELECT price, stock FROM products WHERE id = ?", productID).Scan(&price, &stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ErrProductNotFound
		}
		return decimal.Zero, err
	}

	if stock < quantity {
		return decimal.Zero, &InsufficientStockError{Available: stock}
	}

	total := price.Mul(decimal.NewFromInt(int64(quantity)))

	// 2. --- Decrement stock, but only if enough is still there ---
	result, err := tx.Exec(
		"UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?",
		quantity, productID, quantity,
	)
	if err != nil {
		return decimal.Zero, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return decimal.Zero, err
	}
	if affected == 0 {
		// A concurrent sale got there first; report what is left now.
		if err := tx.QueryRow("SELECT stock FROM products WHERE id = ?", productID).Scan(&stock); err != nil {
			return decimal.Zero, err
		}
		return decimal.Zero, &InsufficientStockError{Available: stock}
	}

	// 3. --- Snapshot the sale at today's price ---
	_, err = tx.Exec(
		"INSERT INTO sales (product_id, quantity, total_price) VALUES (?, ?, ?)",
		productID, quantity, total,
	)
	if err != nil {
		return decimal.Zero, err
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SalesReport sums sale totals per calendar day, ascending by date.
// Bucketing happens here rather than in SQL so the same query text works on
// both the MySQL and SQLite drivers.
func (s *Store) SalesReport() ([]models.SalesBucket, error) {
	rows, err := s.DB.Query("SELECT sale_date, total_price FROM sales ORDER BY sale_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	var days []string

	for rows.Next() {
		var soldAt time.Time
		var total decimal.Decimal
		if err := rows.Scan(&soldAt, &total); err != nil {
			return nil, err
		}
		day := soldAt.Format("2006-01-02")
		if _, seen := totals[day]; !seen {
			days = append(days, day)
		}
		totals[day] = totals[day].Add(total)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	report := make([]models.SalesBucket, 0, len(days))
	for _, day := range days {
		report = append(report, models.SalesBucket{Date: day, Total: totals[day]})
	}
	return report, nil
}

// TotalInventoryValue is the sum of price * stock over all products;
// zero when the catalog is empty.
func (s *Store) TotalInventoryValue() (decimal.Decimal, error) {
	var value decimal.Decimal
	err := s.DB.QueryRow("SELECT COALESCE(SUM(price * stock), 0) FROM products").Scan(&value)
	if err != nil {
		return decimal.Zero, err
	}
	return value, nil
}

// DashboardStats gathers the KPI numbers the dashboard header shows.
func (s *Store) DashboardStats(lowStockThreshold int) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := s.DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&stats.TotalProducts)
	if err != nil {
		return nil, err
	}

	stats.InventoryValue, err = s.TotalInventoryValue()
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRow("SELECT COUNT(*) FROM products WHERE stock < ?", lowStockThreshold).Scan(&stats.LowStockCount)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
