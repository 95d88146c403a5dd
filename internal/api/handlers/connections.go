package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/playpong/backend/internal/audit"
	"github.com/playpong/backend/internal/models"
)

// GetConnectionEvents returns paginated connection audit entries
func GetConnectionEvents(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		connectionID := c.DefaultQuery("connection_id", "")
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if limit <= 0 {
			limit = 25
		}
		if limit > 200 {
			limit = 200
		}
		if offset < 0 {
			offset = 0
		}

		rows, err := audit.Recent(c.Request.Context(), db, connectionID, limit, offset)
		if err != nil {
			log.Printf("[DB] Failed to fetch connection events: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch connection events"})
			return
		}
		if rows == nil {
			rows = []models.ConnectionEvent{}
		}

		c.JSON(http.StatusOK, gin.H{"events": rows, "limit": limit, "offset": offset})
	}
}
