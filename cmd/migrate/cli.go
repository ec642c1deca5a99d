package main

import (
	"database/sql"
	"fmt"

	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/aqario/backend/internal/infrastructure/logger"
	"github.com/aqario/backend/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "migrations"

// cli carries the state shared by every subcommand
type cli struct {
	path     string
	logLevel string

	log *zap.Logger
	cfg *config.Config
	db  *sql.DB
}

func (c *cli) init() error {
	log, err := logger.New(&logger.Config{
		Level:      c.logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.log = log

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c.cfg = cfg
	return nil
}

func (c *cli) close() {
	if c.db != nil {
		_ = c.db.Close()
	}
	if c.log != nil {
		_ = c.log.Sync()
	}
}

// migrator opens PostgreSQL and builds a migrator over --path or the
// embedded migrations
func (c *cli) migrator() (*migration.Migrator, error) {
	if c.cfg.Database.Driver == "sqlite" {
		return nil, fmt.Errorf("schema migrations target PostgreSQL; the sqlite driver is migrated by the server on startup")
	}

	db, err := sql.Open("postgres", c.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	c.db = db

	if c.path != "" {
		c.log.Info("Using migrations directory", zap.String("path", c.path))
		return migration.NewFromPath(db, c.path, c.log)
	}
	return migration.New(db, c.log)
}

func (c *cli) migrationsDir() string {
	if c.path != "" {
		return c.path
	}
	return defaultMigrationsDir
}
