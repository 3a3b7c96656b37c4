package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the model for the 'sales' table. Rows are immutable once written;
// they only ever disappear as a cascade of their product being deleted.
type Sale struct {
	SaleID     int64           `json:"saleId" db:"sale_id"`
	ProductID  int64           `json:"productId" db:"product_id"`
	Quantity   int             `json:"quantity" db:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice" db:"total_price"`
	SaleDate   time.Time       `json:"saleDate" db:"sale_date"`
}

// SalesBucket is one point of the sales-per-day report (the dashboard's
// line chart feed). Date is a calendar day in "YYYY-MM-DD" form.
type SalesBucket struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// DashboardStats holds the KPI numbers shown at the top of the dashboard.
type DashboardStats struct {
	TotalProducts  int             `json:"totalProducts"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
	LowStockCount  int             `json:"lowStockCount"`
}
