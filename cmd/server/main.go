package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/playpong/backend/internal/api"
	"github.com/playpong/backend/internal/audit"
	"github.com/playpong/backend/internal/config"
	"github.com/playpong/backend/internal/database"
	"github.com/playpong/backend/internal/events"
	"github.com/playpong/backend/internal/game"
	"github.com/playpong/backend/internal/migrations"
	"github.com/playpong/backend/internal/redis"
	"github.com/playpong/backend/internal/ws"
	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connection audit log (optional)
	var db *sqlx.DB
	var recorder audit.Recorder = audit.NopRecorder{}
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if cfg.MigrateOnStart {
			log.Println("[MIGRATE] running DB migrations on startup...")
			if err := migrations.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}

		dbRecorder := audit.NewDBRecorder(db, cfg.AuditQueueSize)
		go dbRecorder.Run(ctx)
		recorder = dbRecorder
	} else {
		log.Println("[DB] DATABASE_URL not set; connection audit disabled")
	}

	// Match event bus (optional)
	var rdb *goredis.Client
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RedisURL != "" {
		var err error
		rdb, err = redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb, cfg.EventsChannel)
	} else {
		log.Println("[EVENTS] REDIS_URL not set; match event bus disabled")
	}

	match := game.NewMatch(game.NewRand(cfg.ObstacleSeed))
	hub := ws.NewHub()
	dispatcher := ws.NewDispatcher(match, hub, publisher, recorder)
	hub.SetHandler(dispatcher)

	go hub.Run(ctx)
	go match.Run(ctx, cfg.TickInterval(), dispatcher.Tick)
	if rdb != nil {
		ws.StartEventSubscriber(ctx, rdb, cfg.EventsChannel, hub)
	}

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	api.SetupRoutes(router, match, hub, db, cfg)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		log.Printf("Starting PlayPong server on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
