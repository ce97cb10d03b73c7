package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/contractorpro/contractorpro/internal/config"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/migrations"
	"github.com/contractorpro/contractorpro/internal/postgres"
)

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	flag.Parse()

	if *dryRun {
		printMigrations()
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)
	db, err := postgres.NewDB(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("Running database migrations...")
	if err := migrations.Apply(ctx, db.DB.DB); err != nil {
		logger.Fatalw("Failed to apply migrations", "error", err)
	}
	logger.Info("Migration completed successfully")
}

func printMigrations() {
	all, err := migrations.All()
	if err != nil {
		log.Fatalf("Failed to load migrations: %v", err)
	}
	for _, m := range all {
		fmt.Printf("-- %s\n%s\n", m.Name, m.SQL)
	}
}
