package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/playpong/backend/internal/config"
	"github.com/playpong/backend/internal/ws"
)

// HandleGameWebSocket handles real-time game communication
func HandleGameWebSocket(hub *ws.Hub, cfg *config.Config) gin.HandlerFunc {
	return ws.HandleWebSocket(hub, cfg.SendBufferSize)
}
