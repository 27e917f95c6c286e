// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests load the menu table through db.GetSchemaSQL() so they run against the
// DDL the bootstrap step applies, never a hand-written copy.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/crudgen/internal/db"
)

// setupTestDB creates an in-memory database holding the menu table.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB := setupEmptyDB(t)
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return testDB
}

// setupEmptyDB creates an in-memory database with no tables. Every
// connection to :memory: is a separate database, so the pool is pinned to one.
func setupEmptyDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedMenuEntry inserts a menu entry directly.
func seedMenuEntry(t *testing.T, db *sql.DB, slug string, orderNo int, active bool) {
	t.Helper()
	_, err := db.Exec("INSERT INTO admin_menus (slug, label, order_no, is_active) VALUES (?, ?, ?, ?)", slug, slug, orderNo, active)
	if err != nil {
		t.Fatalf("failed to seed menu entry: %v", err)
	}
}
