package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the model for the 'products' table.
type Product struct {
	ID       int64           `json:"id" db:"id"`
	Name     string          `json:"name" db:"name"`
	Slug     string          `json:"slug" db:"slug"`
	Category string          `json:"category" db:"category"`
	Price    decimal.Decimal `json:"price" db:"price"`
	Stock    int             `json:"stock" db:"stock"`

	// Set by the database at insert time, never updated afterwards.
	AddedDate time.Time `json:"addedDate" db:"added_date"`
}
