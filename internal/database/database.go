package database

import (
	"fmt"
	"os"
	"path/filepath"

	"agapept/internal/config"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver, registers "sqlite"
)

// NewSQLXSQLiteDB opens the submission store, creating its directory if needed.
func NewSQLXSQLiteDB(cfg *config.Config) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.DB.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	db, err := sqlx.Connect("sqlite", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return db, nil
}
