package app

import (
	"testing"

	"github.com/example/spoolworks/internal/ports/secondary"
)

func TestLegacyKey(t *testing.T) {
	cases := map[string]string{
		"total_order_weight": "totalOrderWeight",
		"naked_weight":       "nakedWeight",
		"line_speed":         "lineSpeed",
		"status":             "status",
		"id":                 "id",
	}
	for in, want := range cases {
		if got := legacyKey(in); got != want {
			t.Errorf("legacyKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFieldLookup_CanonicalWinsOverLegacy(t *testing.T) {
	r := secondary.Record{
		"total_order_weight": 100.0,
		"totalOrderWeight":   250.0,
	}
	if got := fieldNumber(r, "total_order_weight"); got != 100 {
		t.Errorf("expected the canonical key to win, got %v", got)
	}
}

func TestFieldLookup_NumericWidths(t *testing.T) {
	r := secondary.Record{"a": int64(7), "b": 7, "c": 7.0}
	for _, key := range []string{"a", "b", "c"} {
		if got := fieldNumber(r, key); got != 7 {
			t.Errorf("fieldNumber(%q) = %v, want 7", key, got)
		}
	}
}

func TestFieldBool_SQLiteIntegers(t *testing.T) {
	r := secondary.Record{"is_active": int64(1)}
	if !fieldBool(r, "is_active") {
		t.Error("expected int64(1) to read as true")
	}
	r["is_active"] = int64(0)
	if fieldBool(r, "is_active") {
		t.Error("expected int64(0) to read as false")
	}
}
