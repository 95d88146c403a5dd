package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	pg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const migrationsTable = "schema_migrations_playpong"

var versionPrefix = regexp.MustCompile(`^0*([0-9]+)_.*\.up\.sql$`)

// RunMigrations applies the SQL files in dir to the database at databaseURL.
// A database that already has the connection_events table but no migrate
// metadata is baselined to the latest version instead of re-created.
func RunMigrations(databaseURL, dir string) error {
	if databaseURL == "" {
		return errors.New("database URL is empty")
	}

	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open DB: %w", err)
	}
	defer sqlDB.Close()

	driver, err := pg.WithInstance(sqlDB, &pg.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if needsBaseline(sqlDB) {
		if latest := LatestVersion(dir); latest > 0 {
			log.Printf("[MIGRATE] baselining database to version %d (existing schema present)", latest)
			if err := m.Force(latest); err != nil {
				log.Printf("[MIGRATE] force to version %d failed: %v", latest, err)
			}
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	log.Printf("[MIGRATE] migrations applied from %s", dir)
	return nil
}

func needsBaseline(db *sql.DB) bool {
	var schemaExists, metaExists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'connection_events')`).Scan(&schemaExists); err != nil || !schemaExists {
		return false
	}
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`, migrationsTable).Scan(&metaExists); err != nil {
		return false
	}
	return !metaExists
}

// LatestVersion returns the highest version among the up migrations in dir,
// or 0 when none are found.
func LatestVersion(dir string) int {
	files, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	latest := 0
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		match := versionPrefix.FindStringSubmatch(f.Name())
		if len(match) < 2 {
			continue
		}
		v, err := strconv.Atoi(match[1])
		if err == nil && v > latest {
			latest = v
		}
	}
	return latest
}
