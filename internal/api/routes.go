package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/playpong/backend/internal/api/handlers"
	"github.com/playpong/backend/internal/config"
	"github.com/playpong/backend/internal/game"
	"github.com/playpong/backend/internal/middleware"
	"github.com/playpong/backend/internal/ws"
)

// SetupRoutes configures all API routes. db may be nil when no database is configured.
func SetupRoutes(router *gin.Engine, match *game.Match, hub *ws.Hub, db *sqlx.DB, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] no-cache headers enabled for all routes")
	}

	wsHandler := handlers.HandleGameWebSocket(hub, cfg)
	router.GET("/ws", wsHandler)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck(match))

		gameGroup := v1.Group("/game")
		{
			gameGroup.GET("/state", handlers.GetGameState(match))
			gameGroup.GET("/ws", wsHandler)
		}

		if db != nil {
			v1.GET("/connections", handlers.GetConnectionEvents(db))
		}
	}
}
