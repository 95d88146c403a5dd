package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Host string
	Port string

	// Match
	TickIntervalMs int
	ObstacleSeed   int64

	// WebSocket
	SendBufferSize int

	// Database (connection audit log, optional)
	DatabaseURL    string
	MigrateOnStart bool
	MigrationsDir  string
	AuditQueueSize int

	// Redis (match event bus, optional)
	RedisURL      string
	EventsChannel string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Host: getEnv("APP_HOST", "127.0.0.1"),
		Port: getEnv("APP_PORT", "8000"),

		// Match
		TickIntervalMs: getEnvInt("TICK_INTERVAL_MS", 50),
		ObstacleSeed:   getEnvInt64("OBSTACLE_SEED", 0),

		// WebSocket
		SendBufferSize: getEnvInt("WS_SEND_BUFFER", 256),

		// Database
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", false),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),
		AuditQueueSize: getEnvInt("AUDIT_QUEUE_SIZE", 128),

		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		EventsChannel: getEnv("PONG_EVENTS_CHANNEL", "pong_events"),
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// TickInterval returns the simulation period. Non-positive values fall back to 50ms.
func (c *Config) TickInterval() time.Duration {
	if c.TickIntervalMs <= 0 {
		return 50 * time.Millisecond
	}
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultValue
}
