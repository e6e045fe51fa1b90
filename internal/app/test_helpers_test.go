package app

import (
	"context"
	"math"

	"github.com/example/spoolworks/internal/ports/secondary"
)

// Ensure mockGateway implements the interface
var _ secondary.Gateway = (*mockGateway)(nil)

// mockGateway implements secondary.Gateway with an in-memory store.
type mockGateway struct {
	store  map[string][]secondary.Record
	nextID map[string]int64

	createErr map[string]error // keyed by collection, fails that create step
	selectErr map[string]error
	updateErr error
	deleteErr error

	createCalls []string
	deleteCalls []string
}

func newMockGateway() *mockGateway {
	return &mockGateway{
		store:     make(map[string][]secondary.Record),
		nextID:    make(map[string]int64),
		createErr: make(map[string]error),
		selectErr: make(map[string]error),
	}
}

func (m *mockGateway) Create(ctx context.Context, collection string, records []secondary.Record) ([]secondary.Record, error) {
	m.createCalls = append(m.createCalls, collection)
	if err := m.createErr[collection]; err != nil {
		return nil, err
	}

	inserted := make([]secondary.Record, 0, len(records))
	for _, record := range records {
		m.nextID[collection]++
		stored := secondary.Record{"id": m.nextID[collection]}
		for k, v := range record {
			stored[k] = v
		}
		m.store[collection] = append(m.store[collection], stored)
		inserted = append(inserted, stored)
	}
	return inserted, nil
}

func (m *mockGateway) Select(ctx context.Context, collection string, filters secondary.Filters) ([]secondary.Record, error) {
	if err := m.selectErr[collection]; err != nil {
		return nil, err
	}

	var matched []secondary.Record
	for _, record := range m.store[collection] {
		if recordMatches(record, filters) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (m *mockGateway) Update(ctx context.Context, collection string, patch secondary.Record, filters secondary.Filters) ([]secondary.Record, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}

	var updated []secondary.Record
	for _, record := range m.store[collection] {
		if recordMatches(record, filters) {
			for k, v := range patch {
				record[k] = v
			}
			updated = append(updated, record)
		}
	}
	return updated, nil
}

func (m *mockGateway) Delete(ctx context.Context, collection string, filters secondary.Filters) (int, error) {
	m.deleteCalls = append(m.deleteCalls, collection)
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}

	var kept []secondary.Record
	removed := 0
	for _, record := range m.store[collection] {
		if recordMatches(record, filters) {
			removed++
			continue
		}
		kept = append(kept, record)
	}
	m.store[collection] = kept
	return removed, nil
}

// seed inserts a record verbatim, bypassing id assignment. Used to model
// pre-migration rows with legacy field naming.
func (m *mockGateway) seed(collection string, record secondary.Record) {
	m.store[collection] = append(m.store[collection], record)
}

func (m *mockGateway) rowCount() int {
	total := 0
	for _, records := range m.store {
		total += len(records)
	}
	return total
}

func recordMatches(record secondary.Record, filters secondary.Filters) bool {
	for k, want := range filters {
		if !scalarEqual(record[k], want) {
			return false
		}
	}
	return true
}

func scalarEqual(a, b any) bool {
	if fa, ok := asFloat(a); ok {
		fb, okb := asFloat(b)
		return okb && math.Abs(fa-fb) < 1e-12
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
