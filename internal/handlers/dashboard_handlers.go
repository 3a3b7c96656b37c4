package handlers

import (
	"net/http"
	"strconv"

	"github.com/01moynul/stocktrack-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns KPI data for the dashboard header
// GET /v1/dashboard-stats
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	threshold := store.DefaultLowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
			return
		}
		threshold = parsed
	}

	stats, err := h.Store.DashboardStats(threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
