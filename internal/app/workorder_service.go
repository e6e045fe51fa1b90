// Package app implements the primary ports: the work order domain service
// orchestrating composition, retrieval, and status control through the
// persistence gateway.
package app

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/example/spoolworks/internal/core/workorder"
	"github.com/example/spoolworks/internal/ports/primary"
	"github.com/example/spoolworks/internal/ports/secondary"
)

// WorkOrderServiceImpl implements the WorkOrderService interface.
type WorkOrderServiceImpl struct {
	gateway secondary.Gateway
	logger  *log.Logger
}

// NewWorkOrderService creates a new WorkOrderService with injected dependencies.
func NewWorkOrderService(gateway secondary.Gateway, logger *log.Logger) *WorkOrderServiceImpl {
	if logger == nil {
		logger = log.Default()
	}
	return &WorkOrderServiceImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// undoStep records one compensation for a partially applied create.
type undoStep struct {
	collection string
	filters    secondary.Filters
}

// CreateWorkOrder composes a work order: customer, header, spools, spec,
// written in strict sequence because each step needs the id produced by
// the previous one. On failure the rows already written are deleted in
// reverse order, so either all four records exist or none do.
func (s *WorkOrderServiceImpl) CreateWorkOrder(ctx context.Context, req primary.CreateWorkOrderRequest) (*primary.WorkOrderAggregate, error) {
	guard := workorder.CanCreateWorkOrder(workorder.CreateWorkOrderContext{
		CustomerName:     req.Customer.Name,
		TotalOrderWeight: req.Order.TotalOrderWeight,
		TotalOrderLength: req.Order.TotalOrderLength,
		SpoolCount:       len(req.Spools),
		LineSpeed:        req.Spec.LineSpeed,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	var undo []undoStep

	// Step 1: customer
	custRows, err := s.gateway.Create(ctx, secondary.CollectionCustomers, []secondary.Record{
		{
			"name":         req.Customer.Name,
			"company_name": req.Customer.CompanyName,
			"email":        req.Customer.Email,
			"phone":        req.Customer.Phone,
			"is_active":    true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer (step 1 of 4): %w", err)
	}
	customer := decodeCustomer(custRows[0])
	undo = append(undo, undoStep{secondary.CollectionCustomers, secondary.Filters{"id": customer.ID}})

	// Step 2: work order header, referencing the new customer
	orderRows, err := s.gateway.Create(ctx, secondary.CollectionWorkOrders, []secondary.Record{
		{
			"customer_id":        customer.ID,
			"order_date":         req.Order.OrderDate,
			"delivery_date":      req.Order.DeliveryDate,
			"reference_number":   req.Order.ReferenceNumber,
			"total_order_weight": req.Order.TotalOrderWeight,
			"total_order_length": req.Order.TotalOrderLength,
			"product_type":       req.Order.ProductType,
			"material_type":      req.Order.MaterialType,
			"width":              req.Order.Width,
			"thickness":          req.Order.Thickness,
			"status":             string(workorder.InitialStatus()),
		},
	})
	if err != nil {
		s.compensate(ctx, undo)
		return nil, fmt.Errorf("failed to create work order header (step 2 of 4): %w", err)
	}
	order := decodeWorkOrder(orderRows[0])
	undo = append(undo, undoStep{secondary.CollectionWorkOrders, secondary.Filters{"id": order.ID}})

	// Step 3: spools, referencing the new work order
	spoolRecords := make([]secondary.Record, len(req.Spools))
	for i, sp := range req.Spools {
		number := sp.SpoolNumber
		if number == 0 {
			number = i + 1
		}
		spoolRecords[i] = secondary.Record{
			"work_order_id":     order.ID,
			"spool_number":      number,
			"naked_weight":      sp.NakedWeight,
			"length":            sp.Length,
			"diameter":          sp.Diameter,
			"spool_type":        sp.SpoolType,
			"insulation_weight": sp.InsulationWeight,
		}
	}
	spoolRows, err := s.gateway.Create(ctx, secondary.CollectionSpools, spoolRecords)
	if err != nil {
		s.compensate(ctx, undo)
		return nil, fmt.Errorf("failed to create spools (step 3 of 4): %w", err)
	}
	undo = append(undo, undoStep{secondary.CollectionSpools, secondary.Filters{"work_order_id": order.ID}})

	// Step 4: production spec, referencing the new work order
	specRows, err := s.gateway.Create(ctx, secondary.CollectionProductionSpecs, []secondary.Record{
		{
			"work_order_id":        order.ID,
			"paper_type":           req.Spec.PaperType,
			"insulation_thickness": req.Spec.InsulationThickness,
			"production_speed":     req.Spec.ProductionSpeed,
			"line_speed":           req.Spec.LineSpeed,
			"paper_layers":         req.Spec.PaperLayers,
			"tolerance_thickness":  req.Spec.ToleranceThickness,
			"tolerance_width":      req.Spec.ToleranceWidth,
		},
	})
	if err != nil {
		s.compensate(ctx, undo)
		return nil, fmt.Errorf("failed to create production spec (step 4 of 4): %w", err)
	}

	agg := &primary.WorkOrderAggregate{
		Customer: customer,
		Order:    order,
		Spools:   make([]workorder.Spool, len(spoolRows)),
		Spec:     decodeProductionSpec(specRows[0]),
	}
	for i, r := range spoolRows {
		agg.Spools[i] = decodeSpool(r)
	}
	sortSpools(agg.Spools)
	return agg, nil
}

// compensate deletes partially written rows in reverse order. A failed
// delete is logged and the remaining compensations still run; the caller
// surfaces the original step error either way.
func (s *WorkOrderServiceImpl) compensate(ctx context.Context, undo []undoStep) {
	for i := len(undo) - 1; i >= 0; i-- {
		step := undo[i]
		if _, err := s.gateway.Delete(ctx, step.collection, step.filters); err != nil {
			s.logger.Printf("compensation failed for %s %v: %v (manual cleanup needed)", step.collection, step.filters, err)
		}
	}
}

// GetWorkOrder retrieves one assembled work order.
func (s *WorkOrderServiceImpl) GetWorkOrder(ctx context.Context, id int64) (*primary.WorkOrderAggregate, error) {
	rows, err := s.gateway.Select(ctx, secondary.CollectionWorkOrders, secondary.Filters{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get work order %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("work order %d: %w", id, primary.ErrNotFound)
	}
	return s.assemble(ctx, rows[0])
}

// ListWorkOrders retrieves all assembled work orders. Failures degrade to
// an empty list: list views stay non-fatal, the outage goes to the log.
func (s *WorkOrderServiceImpl) ListWorkOrders(ctx context.Context) []*primary.WorkOrderAggregate {
	rows, err := s.gateway.Select(ctx, secondary.CollectionWorkOrders, nil)
	if err != nil {
		s.logger.Printf("list work orders degraded to empty: %v", err)
		return []*primary.WorkOrderAggregate{}
	}

	aggregates := make([]*primary.WorkOrderAggregate, 0, len(rows))
	for _, row := range rows {
		agg, err := s.assemble(ctx, row)
		if err != nil {
			s.logger.Printf("list work orders degraded to empty: %v", err)
			return []*primary.WorkOrderAggregate{}
		}
		aggregates = append(aggregates, agg)
	}
	return aggregates
}

// UpdateWorkOrderStatus applies a guarded status transition.
func (s *WorkOrderServiceImpl) UpdateWorkOrderStatus(ctx context.Context, id int64, status workorder.Status) (*workorder.WorkOrder, error) {
	if _, err := workorder.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	rows, err := s.gateway.Select(ctx, secondary.CollectionWorkOrders, secondary.Filters{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get work order %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("work order %d: %w", id, primary.ErrNotFound)
	}

	current := decodeWorkOrder(rows[0])
	if err := workorder.CanTransition(current.Status, status); err != nil {
		return nil, err
	}

	updated, err := s.gateway.Update(ctx, secondary.CollectionWorkOrders,
		secondary.Record{"status": string(status)},
		secondary.Filters{"id": id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update work order %d status: %w", id, err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("work order %d: %w", id, primary.ErrNotFound)
	}

	order := decodeWorkOrder(updated[0])
	return &order, nil
}

// assemble joins a work order row with its customer (name and company
// only), spools, and production spec.
func (s *WorkOrderServiceImpl) assemble(ctx context.Context, row secondary.Record) (*primary.WorkOrderAggregate, error) {
	order := decodeWorkOrder(row)

	agg := &primary.WorkOrderAggregate{Order: order}

	custRows, err := s.gateway.Select(ctx, secondary.CollectionCustomers, secondary.Filters{"id": order.CustomerID})
	if err != nil {
		return nil, fmt.Errorf("failed to load customer for work order %d: %w", order.ID, err)
	}
	if len(custRows) > 0 {
		full := decodeCustomer(custRows[0])
		agg.Customer = workorder.Customer{ID: full.ID, Name: full.Name, CompanyName: full.CompanyName}
	}

	spoolRows, err := s.gateway.Select(ctx, secondary.CollectionSpools, secondary.Filters{"work_order_id": order.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load spools for work order %d: %w", order.ID, err)
	}
	agg.Spools = make([]workorder.Spool, len(spoolRows))
	for i, r := range spoolRows {
		agg.Spools[i] = decodeSpool(r)
	}
	sortSpools(agg.Spools)

	specRows, err := s.gateway.Select(ctx, secondary.CollectionProductionSpecs, secondary.Filters{"work_order_id": order.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load production spec for work order %d: %w", order.ID, err)
	}
	if len(specRows) > 0 {
		agg.Spec = decodeProductionSpec(specRows[0])
	}

	return agg, nil
}

func sortSpools(spools []workorder.Spool) {
	sort.Slice(spools, func(i, j int) bool {
		return spools[i].SpoolNumber < spools[j].SpoolNumber
	})
}

// Ensure WorkOrderServiceImpl implements the interface
var _ primary.WorkOrderService = (*WorkOrderServiceImpl)(nil)
