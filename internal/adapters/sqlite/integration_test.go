package sqlite_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/example/spoolworks/internal/adapters/sqlite"
	"github.com/example/spoolworks/internal/app"
	"github.com/example/spoolworks/internal/core/workorder"
	"github.com/example/spoolworks/internal/ports/primary"
)

// These tests run the domain service against the real gateway to verify
// the whole write/read path over an actual store.

func integrationService(t *testing.T) *app.WorkOrderServiceImpl {
	t.Helper()
	gw := sqlite.NewGateway(setupTestDB(t))
	return app.NewWorkOrderService(gw, log.New(io.Discard, "", 0))
}

func compositionRequest() primary.CreateWorkOrderRequest {
	return primary.CreateWorkOrderRequest{
		Customer: primary.NewCustomer{Name: "Acme", CompanyName: "Acme Cables", Email: "orders@acme.example"},
		Order: primary.NewWorkOrder{
			OrderDate:        "2026-08-01",
			TotalOrderWeight: 100,
			TotalOrderLength: 500,
			ProductType:      "round wire",
			MaterialType:     "copper",
			Width:            12,
			Thickness:        0.8,
		},
		Spools: []primary.NewSpool{
			{NakedWeight: 49, Length: 250, Diameter: 400, SpoolType: "steel"},
			{NakedWeight: 50, Length: 250, Diameter: 400, SpoolType: "steel"},
		},
		Spec: primary.NewProductionSpec{
			PaperType:           "kraft",
			InsulationThickness: 0.5,
			ProductionSpeed:     30,
			LineSpeed:           25,
			PaperLayers:         2,
			ToleranceThickness:  0.05,
			ToleranceWidth:      0.1,
		},
	}
}

func TestServiceOverSQLite_CreateAndGetRoundTrip(t *testing.T) {
	svc := integrationService(t)

	created, err := svc.CreateWorkOrder(context.Background(), compositionRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := svc.GetWorkOrder(context.Background(), created.Order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetched.Order.TotalOrderWeight != 100 || fetched.Order.TotalOrderLength != 500 {
		t.Errorf("totals not preserved: %+v", fetched.Order)
	}
	if len(fetched.Spools) != 2 {
		t.Fatalf("expected 2 spools, got %d", len(fetched.Spools))
	}
	if fetched.Spools[0].SpoolNumber != 1 || fetched.Spools[1].SpoolNumber != 2 {
		t.Errorf("spools not ordered by number: %+v", fetched.Spools)
	}
	if fetched.Spec.LineSpeed != 25 || fetched.Spec.PaperLayers != 2 {
		t.Errorf("spec not preserved: %+v", fetched.Spec)
	}
	if fetched.Customer.Name != "Acme" {
		t.Errorf("customer join missing: %+v", fetched.Customer)
	}
}

func TestServiceOverSQLite_StatusLifecycle(t *testing.T) {
	svc := integrationService(t)

	created, err := svc.CreateWorkOrder(context.Background(), compositionRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.UpdateWorkOrderStatus(context.Background(), created.Order.ID, workorder.StatusInProgress); err != nil {
		t.Fatalf("pending -> in_progress failed: %v", err)
	}
	order, err := svc.UpdateWorkOrderStatus(context.Background(), created.Order.ID, workorder.StatusCompleted)
	if err != nil {
		t.Fatalf("in_progress -> completed failed: %v", err)
	}
	if order.Status != workorder.StatusCompleted {
		t.Errorf("expected completed, got %s", order.Status)
	}

	// Terminal state rejects reopening.
	_, err = svc.UpdateWorkOrderStatus(context.Background(), created.Order.ID, workorder.StatusPending)
	var transitionErr *workorder.TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *TransitionError, got %v", err)
	}
}

func TestServiceOverSQLite_ListAssemblesAll(t *testing.T) {
	svc := integrationService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateWorkOrder(context.Background(), compositionRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := svc.ListWorkOrders(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected 3 work orders, got %d", len(got))
	}
	for _, agg := range got {
		if len(agg.Spools) != 2 || agg.Spec.ID == 0 {
			t.Errorf("expected fully assembled aggregate, got %+v", agg)
		}
	}
}
