package routes

import (
	"net/http"

	"github.com/01moynul/stocktrack-golang/internal/handlers"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware tells the browser the dashboard frontend may call us.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204 reply
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Product Routes ---
		v1.POST("/products", h.AddProduct)
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/low-stock", h.GetLowStockProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.PATCH("/products/:id/stock", h.UpdateStock)
		v1.DELETE("/products/:id", h.DeleteProduct)

		// --- Sales Routes ---
		v1.POST("/sales", h.RecordSale)
		v1.GET("/sales/report", h.GetSalesReport)

		// --- Dashboard Stats ---
		v1.GET("/dashboard-stats", h.GetDashboardStats)
	}

	return router
}
