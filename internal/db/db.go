package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/spoolworks/internal/config"
)

var db *sql.DB

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := openDB(path)
	if err != nil {
		return nil, err
	}

	// Assigned only once fully initialized, so a failed attempt is
	// retried instead of handing out a half-initialized connection.
	db = conn
	return db, nil
}

// openDB opens a connection, enables foreign keys, and creates the schema.
// The connection is closed on any initialization failure.
func openDB(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := conn.Exec(SchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return conn, nil
}

// resolveDBPath returns the database path: the database_path override from
// .spoolworks/config.json in the working directory when set, otherwise
// ~/.spoolworks/spoolworks.db.
func resolveDBPath() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		if cfg, err := config.LoadConfig(cwd); err == nil && cfg.DatabasePath != "" {
			return cfg.DatabasePath, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".spoolworks", "spoolworks.db"), nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	return resolveDBPath()
}
