package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "APP_HOST", "APP_PORT", "TICK_INTERVAL_MS", "OBSTACLE_SEED", "DATABASE_URL", "REDIS_URL", "MIGRATE_ON_START", "MIGRATIONS_DIR"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if got := cfg.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8000", got)
	}
	if got := cfg.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 50ms", got)
	}
	if cfg.DatabaseURL != "" || cfg.RedisURL != "" {
		t.Errorf("expected optional backends to be disabled by default")
	}
	if cfg.MigrateOnStart {
		t.Errorf("MigrateOnStart should default to false")
	}
	if cfg.MigrationsDir != "migrations" {
		t.Errorf("MigrationsDir = %q, want migrations", cfg.MigrationsDir)
	}
	if cfg.EventsChannel != "pong_events" {
		t.Errorf("EventsChannel = %q, want pong_events", cfg.EventsChannel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9100")
	t.Setenv("TICK_INTERVAL_MS", "20")
	t.Setenv("OBSTACLE_SEED", "42")
	t.Setenv("MIGRATE_ON_START", "true")
	t.Setenv("WS_SEND_BUFFER", "not-a-number")

	cfg := Load()

	if got := cfg.Addr(); got != "0.0.0.0:9100" {
		t.Errorf("Addr() = %q", got)
	}
	if got := cfg.TickInterval(); got != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 20ms", got)
	}
	if cfg.ObstacleSeed != 42 {
		t.Errorf("ObstacleSeed = %d, want 42", cfg.ObstacleSeed)
	}
	if !cfg.MigrateOnStart {
		t.Errorf("MigrateOnStart = false, want true")
	}
	if cfg.SendBufferSize != 256 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.SendBufferSize)
	}
}

func TestTickIntervalNonPositive(t *testing.T) {
	cfg := &Config{TickIntervalMs: 0}
	if got := cfg.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 50ms fallback", got)
	}
}
