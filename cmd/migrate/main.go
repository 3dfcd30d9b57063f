package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/bisagn/formalgen/internal/config"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/postgres"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS document_logs (
	id            TEXT PRIMARY KEY,
	document_type TEXT NOT NULL,
	language      TEXT NOT NULL,
	reference_id  TEXT NOT NULL,
	content       TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_document_logs_created_at
	ON document_logs (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_document_logs_type
	ON document_logs (document_type);
`

func main() {
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if *dryRun {
		logger.Info("Dry run mode - printing migration SQL without executing")
		fmt.Print(schema)
		return
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
	err = db.WithTx(ctx, func(ctx context.Context) error {
		_, err := db.GetQuerier(ctx).ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		logger.Fatalw("Failed to create schema resources", "error", err)
	}
	logger.Info("Migration completed successfully")

	fmt.Println("Migration process completed")
}
