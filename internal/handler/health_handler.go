package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-workspace-api/internal/database"
)

// Health godoc
// @Summary      Health check
// @Description  Reports process liveness and database connectivity
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /health [get]
func Health(c *gin.Context) {
	if !database.IsConnected() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
	})
}
