// Command migrate provisions the database schema. It is deliberately
// separate from the server: request-serving code never creates tables.
//
// Usage: migrate [up|down|version]
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"

	"supplytrack/migrations"
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatalf("Failed to load migrations: %v", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, pgxURL(databaseURL))
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Migration up failed: %v", err)
		}
		log.Println("Migrations applied")
	case "down":
		if err := m.Steps(-1); err != nil {
			log.Fatalf("Migration down failed: %v", err)
		}
		log.Println("Rolled back one migration")
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("Failed to read version: %v", err)
		}
		log.Printf("Schema version %d (dirty: %v)", v, dirty)
	default:
		log.Fatalf("Unknown command %q (want up, down or version)", command)
	}
}

// pgxURL rewrites a postgres:// DSN onto the migrate pgx/v5 driver scheme.
func pgxURL(u string) string {
	if rest, ok := strings.CutPrefix(u, "postgresql://"); ok {
		return "pgx5://" + rest
	}
	if rest, ok := strings.CutPrefix(u, "postgres://"); ok {
		return "pgx5://" + rest
	}
	return u
}
