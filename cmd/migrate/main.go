// cmd/migrate/main.go
package main

import (
	"flag"
	"log"

	"github.com/linkedlift/engagement-backend/internal/config"
	"github.com/linkedlift/engagement-backend/internal/db"
)

func main() {
	action := flag.String("action", "up", "Migration action: up, down")
	path := flag.String("path", "migrations", "Path to migration files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	databaseURL := cfg.Database.DSN()

	switch *action {
	case "up":
		log.Println("Running migrations...")
		if err := db.RunMigrations(databaseURL, *path); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")

	case "down":
		log.Println("Rolling back migration...")
		if err := db.RollbackMigrations(databaseURL, *path); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Println("Migration rolled back successfully")

	default:
		log.Fatalf("Unknown action: %s", *action)
	}
}
