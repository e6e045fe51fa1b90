// Package sqlite contains the SQLite implementation of the persistence
// gateway port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/spoolworks/internal/ports/secondary"
)

// collections allow-lists the tables and columns the gateway will touch.
// Requests outside this list fail with a bad_request StoreError instead
// of reaching the SQL layer.
var collections = map[string]map[string]bool{
	secondary.CollectionCustomers: {
		"id": true, "name": true, "company_name": true, "email": true,
		"phone": true, "is_active": true, "created_at": true, "updated_at": true,
	},
	secondary.CollectionWorkOrders: {
		"id": true, "customer_id": true, "order_date": true, "delivery_date": true,
		"reference_number": true, "total_order_weight": true, "total_order_length": true,
		"product_type": true, "material_type": true, "width": true, "thickness": true,
		"status": true, "created_at": true, "updated_at": true,
	},
	secondary.CollectionSpools: {
		"id": true, "work_order_id": true, "spool_number": true, "naked_weight": true,
		"length": true, "diameter": true, "spool_type": true, "insulation_weight": true,
		"created_at": true,
	},
	secondary.CollectionProductionSpecs: {
		"id": true, "work_order_id": true, "paper_type": true, "insulation_thickness": true,
		"production_speed": true, "line_speed": true, "paper_layers": true,
		"tolerance_thickness": true, "tolerance_width": true, "created_at": true,
	},
}

// Gateway implements secondary.Gateway with SQLite.
type Gateway struct {
	db *sql.DB
}

// NewGateway creates a new SQLite persistence gateway.
func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{db: db}
}

// Create inserts records one at a time and returns the stored rows with
// server-assigned fields populated.
func (g *Gateway) Create(ctx context.Context, collection string, records []secondary.Record) ([]secondary.Record, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	inserted := make([]secondary.Record, 0, len(records))
	for _, record := range records {
		keys, err := sortedColumns(collection, record)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, &secondary.StoreError{Code: "bad_request", Message: "empty record"}
		}

		args := make([]any, len(keys))
		for i, k := range keys {
			args[i] = toScalar(record[k])
		}
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			collection,
			strings.Join(keys, ", "),
			strings.TrimSuffix(strings.Repeat("?, ", len(keys)), ", "),
		)

		res, err := g.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, &secondary.StoreError{Code: "constraint", Message: fmt.Sprintf("insert into %s: %v", collection, err)}
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read inserted id: %w", err)
		}

		rows, err := g.Select(ctx, collection, secondary.Filters{"id": id})
		if err != nil {
			return nil, err
		}
		if len(rows) != 1 {
			return nil, fmt.Errorf("inserted row %s/%d not readable", collection, id)
		}
		inserted = append(inserted, rows[0])
	}
	return inserted, nil
}

// Select returns rows matching all filters by equality, ordered by id.
func (g *Gateway) Select(ctx context.Context, collection string, filters secondary.Filters) ([]secondary.Record, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	where, args, err := buildWhere(collection, filters)
	if err != nil {
		return nil, err
	}

	query := "SELECT * FROM " + collection + where + " ORDER BY id"
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &secondary.StoreError{Code: "query", Message: fmt.Sprintf("select from %s: %v", collection, err)}
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Update applies patch to all rows matching filters and returns the
// updated rows. updated_at is refreshed when the collection carries it.
func (g *Gateway) Update(ctx context.Context, collection string, patch secondary.Record, filters secondary.Filters) ([]secondary.Record, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	keys, err := sortedColumns(collection, patch)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, &secondary.StoreError{Code: "bad_request", Message: "empty patch"}
	}

	sets := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys))
	for _, k := range keys {
		sets = append(sets, k+" = ?")
		args = append(args, toScalar(patch[k]))
	}
	if collections[collection]["updated_at"] && patch["updated_at"] == nil {
		sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	}

	where, whereArgs, err := buildWhere(collection, filters)
	if err != nil {
		return nil, err
	}
	args = append(args, whereArgs...)

	query := fmt.Sprintf("UPDATE %s SET %s%s", collection, strings.Join(sets, ", "), where)
	if _, err := g.db.ExecContext(ctx, query, args...); err != nil {
		return nil, &secondary.StoreError{Code: "constraint", Message: fmt.Sprintf("update %s: %v", collection, err)}
	}

	// Re-select with filter values overridden by the patch, so rows stay
	// findable when the patch touches a filtered column.
	post := secondary.Filters{}
	for k, v := range filters {
		post[k] = v
	}
	for k := range post {
		if v, ok := patch[k]; ok {
			post[k] = v
		}
	}
	return g.Select(ctx, collection, post)
}

// Delete removes rows matching filters and returns the affected count.
func (g *Gateway) Delete(ctx context.Context, collection string, filters secondary.Filters) (int, error) {
	if err := checkCollection(collection); err != nil {
		return 0, err
	}
	if len(filters) == 0 {
		return 0, &secondary.StoreError{Code: "bad_request", Message: "delete requires filters"}
	}

	where, args, err := buildWhere(collection, filters)
	if err != nil {
		return 0, err
	}

	res, err := g.db.ExecContext(ctx, "DELETE FROM "+collection+where, args...)
	if err != nil {
		return 0, &secondary.StoreError{Code: "constraint", Message: fmt.Sprintf("delete from %s: %v", collection, err)}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(n), nil
}

func checkCollection(collection string) error {
	if _, ok := collections[collection]; !ok {
		return &secondary.StoreError{Code: "bad_request", Message: "unknown collection: " + collection}
	}
	return nil
}

// sortedColumns validates record keys against the allow-list and returns
// them sorted, so generated SQL is deterministic.
func sortedColumns(collection string, record secondary.Record) ([]string, error) {
	keys := make([]string, 0, len(record))
	for k := range record {
		if !collections[collection][k] {
			return nil, &secondary.StoreError{Code: "bad_request", Message: fmt.Sprintf("unknown column %s.%s", collection, k)}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func buildWhere(collection string, filters secondary.Filters) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}
	keys, err := sortedColumns(collection, secondary.Record(filters))
	if err != nil {
		return "", nil, err
	}
	clauses := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		clauses[i] = k + " = ?"
		args[i] = toScalar(filters[k])
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func scanRecords(rows *sql.Rows) ([]secondary.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var records []secondary.Record
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := secondary.Record{}
		for i, col := range cols {
			record[col] = fromScalar(values[i])
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return records, nil
}

// toScalar converts gateway values to driver-friendly scalars.
func toScalar(v any) any {
	switch val := v.(type) {
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		return v
	}
}

// fromScalar normalizes driver output to the gateway's scalar set.
func fromScalar(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return v
	}
}
