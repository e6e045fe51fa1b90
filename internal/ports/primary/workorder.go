// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces the application exposes to its
// callers (CLI adapters, future API layers).
package primary

import (
	"context"
	"errors"

	"github.com/example/spoolworks/internal/core/workorder"
)

// ErrNotFound reports a lookup for a work order that does not exist.
// Distinct from persistence failures so callers can show it verbatim.
var ErrNotFound = errors.New("work order not found")

// NewCustomer is the caller-supplied customer shape. The store assigns
// id and timestamps.
type NewCustomer struct {
	Name        string
	CompanyName string
	Email       string
	Phone       string
}

// NewWorkOrder is the caller-supplied order header. The service injects
// the customer reference after the customer row is created.
type NewWorkOrder struct {
	OrderDate        string
	DeliveryDate     string
	ReferenceNumber  string
	TotalOrderWeight float64
	TotalOrderLength float64
	ProductType      string
	MaterialType     string
	Width            float64
	Thickness        float64
}

// NewSpool is one caller-supplied spool. SpoolNumber may be zero, in
// which case the service assigns ordinals in input order.
type NewSpool struct {
	SpoolNumber      int
	NakedWeight      float64
	Length           float64
	Diameter         float64
	SpoolType        string
	InsulationWeight float64
}

// NewProductionSpec is the caller-supplied spec shape.
type NewProductionSpec struct {
	PaperType           string
	InsulationThickness float64
	ProductionSpeed     float64
	LineSpeed           float64
	PaperLayers         int
	ToleranceThickness  float64
	ToleranceWidth      float64
}

// CreateWorkOrderRequest composes a work order: customer + header +
// one-or-more spools + production spec, created together.
type CreateWorkOrderRequest struct {
	Customer NewCustomer
	Order    NewWorkOrder
	Spools   []NewSpool
	Spec     NewProductionSpec
}

// WorkOrderAggregate is a work order joined with its related records.
type WorkOrderAggregate struct {
	Customer workorder.Customer
	Order    workorder.WorkOrder
	Spools   []workorder.Spool
	Spec     workorder.ProductionSpec
}

// WorkOrderService defines the primary port for work order composition,
// retrieval, and status control.
type WorkOrderService interface {
	// CreateWorkOrder validates the request, then writes customer,
	// order header, spools, and spec in sequence. On any step failure
	// the previously written rows are compensated in reverse order, so
	// either all four records exist or none do.
	CreateWorkOrder(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrderAggregate, error)

	// GetWorkOrder returns the assembled aggregate for one work order.
	// Returns ErrNotFound when no row matches.
	GetWorkOrder(ctx context.Context, id int64) (*WorkOrderAggregate, error)

	// ListWorkOrders returns all assembled work orders. Underlying
	// failures are logged and degrade to an empty slice so list views
	// never crash the caller.
	ListWorkOrders(ctx context.Context) []*WorkOrderAggregate

	// UpdateWorkOrderStatus applies a guarded status transition and
	// returns the updated work order. Illegal transitions fail with a
	// *workorder.TransitionError; same-status updates are no-ops.
	UpdateWorkOrderStatus(ctx context.Context, id int64, status workorder.Status) (*workorder.WorkOrder, error)
}
