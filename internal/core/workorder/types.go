// Package workorder contains the pure business logic for work orders.
// This is part of the Functional Core - no I/O, only pure functions and
// the canonical entity shapes shared by the service and metrics layers.
package workorder

// Customer is the party a work order is produced for. Created together
// with the order; the composition flow has no reuse-existing-customer path.
type Customer struct {
	ID          int64
	Name        string
	CompanyName string
	Email       string
	Phone       string
	IsActive    bool
	CreatedAt   string
	UpdatedAt   string
}

// WorkOrder is the header row of a production job. Totals are entered by
// the operator; the spools carry the measured values.
type WorkOrder struct {
	ID               int64
	CustomerID       int64
	OrderDate        string
	DeliveryDate     string
	ReferenceNumber  string
	TotalOrderWeight float64 // kg
	TotalOrderLength float64 // m
	ProductType      string
	MaterialType     string
	Width            float64
	Thickness        float64
	Status           Status
	CreatedAt        string
	UpdatedAt        string
}

// Spool is one physical reel of produced wire. Spools belong to exactly
// one work order and are immutable once created.
type Spool struct {
	ID               int64
	WorkOrderID      int64
	SpoolNumber      int
	NakedWeight      float64 // kg, pre-insulation
	Length           float64 // m
	Diameter         float64 // mm
	SpoolType        string
	InsulationWeight float64 // 0 when not recorded
}

// ProductionSpec holds the process parameters governing how a work order
// is run. One spec per work order.
type ProductionSpec struct {
	ID                  int64
	WorkOrderID         int64
	PaperType           string
	InsulationThickness float64
	ProductionSpeed     float64
	LineSpeed           float64 // m/min, time-estimate divisor
	PaperLayers         int
	ToleranceThickness  float64
	ToleranceWidth      float64
}
