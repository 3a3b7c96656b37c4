package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/01moynul/stocktrack-golang/internal/models"
	"github.com/01moynul/stocktrack-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AddProductInput defines the JSON input for creating a product
type AddProductInput struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock" binding:"gte=0"`
}

// AddProduct is the handler for POST /v1/products
func (h *Handlers) AddProduct(c *gin.Context) {
	var input AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID, err := h.Store.AddProduct(input.Name, input.Category, input.Price, input.Stock)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Product added",
		"productId": productID,
	})
}

// GetProducts is the handler for GET /v1/products
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.Store.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	// Always return an array, never null
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
	})
}

// GetProduct is the handler for GET /v1/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.Store.ProductByID(id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateStockInput carries either an increment or an absolute value.
// Exactly one of the two fields must be set.
type UpdateStockInput struct {
	Add *int `json:"add"`
	Set *int `json:"set"`
}

// UpdateStock is the handler for PATCH /v1/products/:id/stock
func (h *Handlers) UpdateStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if (input.Add == nil) == (input.Set == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide exactly one of 'add' or 'set'"})
		return
	}

	var ok bool
	if input.Add != nil {
		ok, err = h.Store.IncreaseStock(id, *input.Add)
	} else {
		ok, err = h.Store.SetStock(id, *input.Set)
	}
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
}

// DeleteProduct is the handler for DELETE /v1/products/:id.
// Deleting a product also removes all of its sales records.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ok, err := h.Store.DeleteProduct(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetLowStockProducts is the handler for GET /v1/products/low-stock
func (h *Handlers) GetLowStockProducts(c *gin.Context) {
	threshold := store.DefaultLowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
			return
		}
		threshold = parsed
	}

	products, err := h.Store.LowStock(threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"threshold": threshold,
		"products":  products,
	})
}
