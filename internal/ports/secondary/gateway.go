// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// Collection names known to the persistence gateway.
const (
	CollectionCustomers       = "customers"
	CollectionWorkOrders      = "work_orders"
	CollectionSpools          = "spools"
	CollectionProductionSpecs = "production_specs"
)

// Record is a single row as stored in or returned by the gateway.
// Keys are column names; values are scalars as produced by the store
// (int64, float64, string, bool, nil).
type Record map[string]any

// Filters selects rows by equality on each key. Multiple keys are ANDed.
type Filters map[string]any

// Gateway defines the secondary port for generic record persistence.
// Every domain operation goes through this one interface; the gateway
// has no knowledge of cross-entity invariants.
type Gateway interface {
	// Create inserts one or more records into the named collection and
	// returns the inserted rows with server-assigned fields (id,
	// timestamps) populated.
	Create(ctx context.Context, collection string, records []Record) ([]Record, error)

	// Select returns rows matching all filters by equality. An empty
	// result is not an error.
	Select(ctx context.Context, collection string, filters Filters) ([]Record, error)

	// Update applies patch to all rows matching filters and returns the
	// updated rows.
	Update(ctx context.Context, collection string, patch Record, filters Filters) ([]Record, error)

	// Delete removes rows matching filters and returns the number of
	// rows removed. Used by the create saga to compensate partial writes.
	Delete(ctx context.Context, collection string, filters Filters) (int, error)
}

// StoreError is the error shape surfaced by gateway implementations.
type StoreError struct {
	Message string
	Code    string
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}
