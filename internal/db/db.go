// Package db opens the SQLite database of a target project.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DSN returns the go-sqlite3 data source name for a database file.
// Transactions take the write lock at BEGIN so concurrent runs serialize
// instead of failing on lock upgrade.
func DSN(path string) string {
	return "file:" + path + "?_txlock=immediate&_foreign_keys=on"
}

// Open opens the database at path, creating its directory if needed.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	return database, nil
}

// OpenReadOnly opens the database at path without modifying the project.
// A missing file is served as an empty in-memory database, so callers see
// no tables and nothing is created on disk.
func OpenReadOnly(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?mode=ro&_foreign_keys=on"
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		dsn = "file::memory:?mode=memory"
	} else if err != nil {
		return nil, fmt.Errorf("failed to check database %s: %w", path, err)
	}

	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	database.SetMaxOpenConns(1)

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	return database, nil
}
