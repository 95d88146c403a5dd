package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playpong/backend/internal/game"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthCheck returns server health status
func HealthCheck(match *game.Match) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "playpong-api",
			"version": version,
			"uptime":  time.Since(startTime).String(),
			"players": len(match.Occupied()),
			"ticks":   match.Ticks(),
		})
	}
}
