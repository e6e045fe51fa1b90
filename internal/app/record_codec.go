package app

import (
	"strings"

	"github.com/example/spoolworks/internal/core/workorder"
	"github.com/example/spoolworks/internal/ports/secondary"
)

// Record codec for the persistence gateway.
//
// The store's canonical shape is snake_case, but records migrated from the
// old tracker carry camelCase keys (totalOrderWeight, nakedWeight, ...).
// Normalization happens here and only here: decoders try the canonical key
// first, then the legacy spelling. Business logic never sees a record.

// legacyKey converts a canonical snake_case column name to the camelCase
// spelling used by pre-migration records.
func legacyKey(key string) string {
	parts := strings.Split(key, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func fieldValue(r secondary.Record, key string) (any, bool) {
	if v, ok := r[key]; ok && v != nil {
		return v, true
	}
	if v, ok := r[legacyKey(key)]; ok && v != nil {
		return v, true
	}
	return nil, false
}

func fieldString(r secondary.Record, key string) string {
	v, ok := fieldValue(r, key)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}

func fieldNumber(r secondary.Record, key string) float64 {
	v, ok := fieldValue(r, key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func fieldInt(r secondary.Record, key string) int64 {
	return int64(fieldNumber(r, key))
}

func fieldBool(r secondary.Record, key string) bool {
	v, ok := fieldValue(r, key)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case int:
		return b != 0
	}
	return false
}

func decodeCustomer(r secondary.Record) workorder.Customer {
	return workorder.Customer{
		ID:          fieldInt(r, "id"),
		Name:        fieldString(r, "name"),
		CompanyName: fieldString(r, "company_name"),
		Email:       fieldString(r, "email"),
		Phone:       fieldString(r, "phone"),
		IsActive:    fieldBool(r, "is_active"),
		CreatedAt:   fieldString(r, "created_at"),
		UpdatedAt:   fieldString(r, "updated_at"),
	}
}

func decodeWorkOrder(r secondary.Record) workorder.WorkOrder {
	return workorder.WorkOrder{
		ID:               fieldInt(r, "id"),
		CustomerID:       fieldInt(r, "customer_id"),
		OrderDate:        fieldString(r, "order_date"),
		DeliveryDate:     fieldString(r, "delivery_date"),
		ReferenceNumber:  fieldString(r, "reference_number"),
		TotalOrderWeight: fieldNumber(r, "total_order_weight"),
		TotalOrderLength: fieldNumber(r, "total_order_length"),
		ProductType:      fieldString(r, "product_type"),
		MaterialType:     fieldString(r, "material_type"),
		Width:            fieldNumber(r, "width"),
		Thickness:        fieldNumber(r, "thickness"),
		Status:           workorder.Status(fieldString(r, "status")),
		CreatedAt:        fieldString(r, "created_at"),
		UpdatedAt:        fieldString(r, "updated_at"),
	}
}

func decodeSpool(r secondary.Record) workorder.Spool {
	return workorder.Spool{
		ID:               fieldInt(r, "id"),
		WorkOrderID:      fieldInt(r, "work_order_id"),
		SpoolNumber:      int(fieldInt(r, "spool_number")),
		NakedWeight:      fieldNumber(r, "naked_weight"),
		Length:           fieldNumber(r, "length"),
		Diameter:         fieldNumber(r, "diameter"),
		SpoolType:        fieldString(r, "spool_type"),
		InsulationWeight: fieldNumber(r, "insulation_weight"),
	}
}

func decodeProductionSpec(r secondary.Record) workorder.ProductionSpec {
	return workorder.ProductionSpec{
		ID:                  fieldInt(r, "id"),
		WorkOrderID:         fieldInt(r, "work_order_id"),
		PaperType:           fieldString(r, "paper_type"),
		InsulationThickness: fieldNumber(r, "insulation_thickness"),
		ProductionSpeed:     fieldNumber(r, "production_speed"),
		LineSpeed:           fieldNumber(r, "line_speed"),
		PaperLayers:         int(fieldInt(r, "paper_layers")),
		ToleranceThickness:  fieldNumber(r, "tolerance_thickness"),
		ToleranceWidth:      fieldNumber(r, "tolerance_width"),
	}
}
