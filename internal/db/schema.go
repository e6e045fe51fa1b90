package db

// SchemaSQL is the complete schema for fresh spoolworks installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(): if gateway code references a column that
// doesn't exist here, tests fail immediately with "no such column" instead
// of drifting silently.
//
// Work orders use integer rowids assigned by the store; the service layer
// never generates identifiers itself.
const SchemaSQL = `
-- Customers (created as part of work-order composition)
CREATE TABLE IF NOT EXISTS customers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	company_name TEXT,
	email TEXT,
	phone TEXT,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Work orders (header row; totals are entered, spools are measured)
CREATE TABLE IF NOT EXISTS work_orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_id INTEGER NOT NULL,
	order_date TEXT NOT NULL,
	delivery_date TEXT,
	reference_number TEXT,
	total_order_weight REAL NOT NULL,
	total_order_length REAL NOT NULL,
	product_type TEXT,
	material_type TEXT,
	width REAL,
	thickness REAL,
	status TEXT NOT NULL CHECK(status IN ('pending', 'in_progress', 'completed', 'cancelled')) DEFAULT 'pending',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (customer_id) REFERENCES customers(id)
);

-- Spools (one work order has many spools, created together with it)
CREATE TABLE IF NOT EXISTS spools (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	work_order_id INTEGER NOT NULL,
	spool_number INTEGER NOT NULL,
	naked_weight REAL NOT NULL,
	length REAL NOT NULL,
	diameter REAL,
	spool_type TEXT,
	insulation_weight REAL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (work_order_id) REFERENCES work_orders(id),
	UNIQUE(work_order_id, spool_number)
);

-- Production specifications (1:1 with work orders)
CREATE TABLE IF NOT EXISTS production_specs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	work_order_id INTEGER NOT NULL UNIQUE,
	paper_type TEXT,
	insulation_thickness REAL NOT NULL DEFAULT 0,
	production_speed REAL NOT NULL DEFAULT 0,
	line_speed REAL NOT NULL DEFAULT 0,
	paper_layers INTEGER,
	tolerance_thickness REAL,
	tolerance_width REAL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (work_order_id) REFERENCES work_orders(id)
);

CREATE INDEX IF NOT EXISTS idx_work_orders_customer ON work_orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_spools_work_order ON spools(work_order_id);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
