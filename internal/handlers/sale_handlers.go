package handlers

import (
	"errors"
	"net/http"

	"github.com/01moynul/stocktrack-golang/internal/models"
	"github.com/01moynul/stocktrack-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// RecordSaleInput defines the JSON input for recording a sale
type RecordSaleInput struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// RecordSale is the handler for POST /v1/sales.
// The sale insert and the stock decrement commit together or not at all, so
// a failed sale never leaves the tables inconsistent.
func (h *Handlers) RecordSale(c *gin.Context) {
	var input RecordSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, err := h.Store.RecordSale(c, input.ProductID, input.Quantity)
	if err != nil {
		var stockErr *store.InsufficientStockError
		var verr *store.ValidationError
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.As(err, &stockErr):
			c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Sale recorded",
		"totalPrice": total,
	})
}

// GetSalesReport is the handler for GET /v1/sales/report.
// It feeds the dashboard's sales-per-day line chart.
func (h *Handlers) GetSalesReport(c *gin.Context) {
	report, err := h.Store.SalesReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if report == nil {
		report = []models.SalesBucket{}
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
