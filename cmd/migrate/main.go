package main

import (
	"context"
	"flag"
	"log"

	"github.com/muhammadchandra19/auctionhouse/pkg/config"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	migration "github.com/muhammadchandra19/auctionhouse/pkg/migration-pg"
	"github.com/muhammadchandra19/auctionhouse/pkg/postgresql"
)

// migrateConfig loads only the postgres block so running migrations does not
// require the daemon's account variables.
type migrateConfig struct {
	Postgres postgresql.Config `envPrefix:"POSTGRES_"`
}

func main() {
	var (
		direction    = flag.String("direction", "up", "Migration direction: up or down")
		steps        = flag.Int("steps", 0, "Number of steps to migrate (0 = all)")
		migrationDir = flag.String("dir", "migrations", "Directory holding *.up.sql / *.down.sql files")
	)
	flag.Parse()

	ctx := context.Background()

	cfg := &migrateConfig{}
	if err := config.Load(cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, err := logger.NewLogger(logger.WithServiceName("migrate"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	pgClient, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()

	migrationConfig := migration.Config{
		MigrationDir: *migrationDir,
		Schema:       "public",
		TableName:    "schema_migrations",
	}
	runner := migration.NewRunner(ctx, pgClient, l, migrationConfig)

	if err := runner.EnsureMigrationTable(); err != nil {
		log.Fatalf("Failed to create migration table: %v", err)
	}

	switch *direction {
	case "up":
		if err := runner.MigrateUp(*steps); err != nil {
			log.Fatalf("Failed to migrate up: %v", err)
		}
	case "down":
		if err := runner.MigrateDown(*steps); err != nil {
			log.Fatalf("Failed to migrate down: %v", err)
		}
	default:
		log.Fatalf("Invalid direction: %s. Use 'up' or 'down'", *direction)
	}

	log.Printf("Migration %s completed successfully", *direction)
}
