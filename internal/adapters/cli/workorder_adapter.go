// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services and the metrics engine.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/spoolworks/internal/core/metrics"
	"github.com/example/spoolworks/internal/core/workorder"
	"github.com/example/spoolworks/internal/ports/primary"
)

// WorkOrderAdapter translates CLI operations to WorkOrderService calls.
// It depends only on the service interface, enabling testing with mocks.
type WorkOrderAdapter struct {
	service   primary.WorkOrderService
	out       io.Writer
	plantName string
}

// NewWorkOrderAdapter creates a new WorkOrderAdapter writing to out.
// plantName may be empty; when set it appears in report headers.
func NewWorkOrderAdapter(service primary.WorkOrderService, out io.Writer, plantName string) *WorkOrderAdapter {
	return &WorkOrderAdapter{
		service:   service,
		out:       out,
		plantName: plantName,
	}
}

// Create composes a new work order and prints the created aggregate.
func (a *WorkOrderAdapter) Create(ctx context.Context, req primary.CreateWorkOrderRequest) error {
	agg, err := a.service.CreateWorkOrder(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created work order %d for %s (%d spools, %.1f kg / %.1f m)\n",
		agg.Order.ID, customerLabel(agg.Customer), len(agg.Spools),
		agg.Order.TotalOrderWeight, agg.Order.TotalOrderLength)
	return nil
}

// List prints all work orders in tabular form.
func (a *WorkOrderAdapter) List(ctx context.Context) error {
	aggregates := a.service.ListWorkOrders(ctx)

	if len(aggregates) == 0 {
		fmt.Fprintln(a.out, "No work orders found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-12s %-8s %-10s %-10s %s\n", "ID", "STATUS", "SPOOLS", "WEIGHT", "LENGTH", "CUSTOMER")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, agg := range aggregates {
		fmt.Fprintf(a.out, "%-6d %-12s %-8d %-10.1f %-10.1f %s\n",
			agg.Order.ID, statusLabel(agg.Order.Status), len(agg.Spools),
			agg.Order.TotalOrderWeight, agg.Order.TotalOrderLength,
			customerLabel(agg.Customer))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show prints the full aggregate plus the derived production report.
func (a *WorkOrderAdapter) Show(ctx context.Context, id int64) error {
	agg, err := a.service.GetWorkOrder(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nWork order: %d\n", agg.Order.ID)
	fmt.Fprintf(a.out, "Customer:   %s\n", customerLabel(agg.Customer))
	fmt.Fprintf(a.out, "Status:     %s\n", statusLabel(agg.Order.Status))
	fmt.Fprintf(a.out, "Ordered:    %.1f kg over %.1f m\n", agg.Order.TotalOrderWeight, agg.Order.TotalOrderLength)
	if agg.Order.ProductType != "" {
		fmt.Fprintf(a.out, "Product:    %s (%s)\n", agg.Order.ProductType, agg.Order.MaterialType)
	}

	fmt.Fprintf(a.out, "\n%-8s %-12s %-10s %-10s %s\n", "SPOOL", "WEIGHT", "LENGTH", "DIAMETER", "INSULATION")
	for _, s := range agg.Spools {
		fmt.Fprintf(a.out, "%-8d %-12.2f %-10.2f %-10.2f %.2f\n",
			s.SpoolNumber, s.NakedWeight, s.Length, s.Diameter, s.InsulationWeight)
	}

	a.printReport(agg)
	return nil
}

// Report prints only the derived production report.
func (a *WorkOrderAdapter) Report(ctx context.Context, id int64) error {
	agg, err := a.service.GetWorkOrder(ctx, id)
	if err != nil {
		return err
	}
	a.printReport(agg)
	return nil
}

// UpdateStatus applies a guarded status transition.
func (a *WorkOrderAdapter) UpdateStatus(ctx context.Context, id int64, status workorder.Status) error {
	order, err := a.service.UpdateWorkOrderStatus(ctx, id, status)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %d is now %s\n", order.ID, statusLabel(order.Status))
	return nil
}

func (a *WorkOrderAdapter) printReport(agg *primary.WorkOrderAggregate) {
	if a.plantName != "" {
		fmt.Fprintf(a.out, "\nProduction report, %s\n", a.plantName)
	} else {
		fmt.Fprintln(a.out, "\nProduction report")
	}

	if eff, err := metrics.ProductionEfficiency(&agg.Order, agg.Spools); err != nil {
		fmt.Fprintln(a.out, "Efficiency:    unknown (no ordered weight)")
	} else {
		fmt.Fprintf(a.out, "Efficiency:    %.1f%%\n", eff)
	}

	if est, err := metrics.EstimateProductionTime(&agg.Spec, &agg.Order); err != nil {
		fmt.Fprintln(a.out, "Est. run time: unknown (no line speed)")
	} else {
		fmt.Fprintf(a.out, "Est. run time: %.1f min\n", est)
	}

	validation := metrics.ValidateSpoolSpecifications(&agg.Order, &agg.Spec, agg.Spools)
	if validation.Valid {
		fmt.Fprintf(a.out, "Tolerances:    %s\n", color.New(color.FgGreen).Sprint("within spec"))
		return
	}
	fmt.Fprintf(a.out, "Tolerances:    %s\n", color.New(color.FgRed).Sprint("out of spec"))
	for _, detail := range validation.Details {
		fmt.Fprintf(a.out, "  - %s\n", detail)
	}
}

func customerLabel(c workorder.Customer) string {
	if c.CompanyName != "" {
		return fmt.Sprintf("%s (%s)", c.Name, c.CompanyName)
	}
	return c.Name
}

func statusLabel(s workorder.Status) string {
	return statusColor(s).Sprint(string(s))
}

func statusColor(s workorder.Status) *color.Color {
	switch s {
	case workorder.StatusPending:
		return color.New(color.FgYellow)
	case workorder.StatusInProgress:
		return color.New(color.FgCyan)
	case workorder.StatusCompleted:
		return color.New(color.FgGreen)
	case workorder.StatusCancelled:
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}
