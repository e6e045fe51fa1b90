// Package sqlite_test contains integration tests for the SQLite gateway.
//
// The schema is loaded in exactly one place, via db.GetSchemaSQL(), so the
// tests always run against the authoritative schema. Do not hardcode
// CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/spoolworks/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCustomer inserts a test customer and returns its id.
func seedCustomer(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Customer"
	}
	res, err := conn.Exec("INSERT INTO customers (name, is_active) VALUES (?, 1)", name)
	if err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read customer id: %v", err)
	}
	return id
}

// seedWorkOrder inserts a test work order and returns its id.
func seedWorkOrder(t *testing.T, conn *sql.DB, customerID int64, weight, length float64) int64 {
	t.Helper()
	res, err := conn.Exec(
		"INSERT INTO work_orders (customer_id, order_date, total_order_weight, total_order_length, status) VALUES (?, '2026-08-01', ?, ?, 'pending')",
		customerID, weight, length,
	)
	if err != nil {
		t.Fatalf("failed to seed work order: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read work order id: %v", err)
	}
	return id
}
