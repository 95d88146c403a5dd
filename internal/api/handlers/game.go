package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playpong/backend/internal/game"
)

// GetGameState returns the current snapshot and which slots are taken
func GetGameState(match *game.Match) gin.HandlerFunc {
	return func(c *gin.Context) {
		occupied := match.Occupied()
		c.Header("X-Player-Count", strconv.Itoa(len(occupied)))
		c.JSON(http.StatusOK, gin.H{
			"state":    match.Snapshot(),
			"occupied": occupied,
		})
	}
}
