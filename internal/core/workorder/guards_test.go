package workorder

import (
	"strings"
	"testing"
)

func validCreateContext() CreateWorkOrderContext {
	return CreateWorkOrderContext{
		CustomerName:     "Acme",
		TotalOrderWeight: 100,
		TotalOrderLength: 500,
		SpoolCount:       2,
		LineSpeed:        25,
	}
}

func TestCanCreateWorkOrder_Valid(t *testing.T) {
	result := CanCreateWorkOrder(validCreateContext())
	if !result.Allowed {
		t.Errorf("expected valid context to pass, got: %s", result.Reason)
	}
	if result.Error() != nil {
		t.Errorf("expected nil error for allowed result, got %v", result.Error())
	}
}

func TestCanCreateWorkOrder_MissingCustomerName(t *testing.T) {
	ctx := validCreateContext()
	ctx.CustomerName = ""

	result := CanCreateWorkOrder(ctx)
	if result.Allowed {
		t.Fatal("expected missing customer name to be rejected")
	}
	if !strings.Contains(result.Reason, "customer name") {
		t.Errorf("expected reason to mention customer name, got: %s", result.Reason)
	}
}

func TestCanCreateWorkOrder_NoSpools(t *testing.T) {
	ctx := validCreateContext()
	ctx.SpoolCount = 0

	result := CanCreateWorkOrder(ctx)
	if result.Allowed {
		t.Fatal("expected zero spools to be rejected")
	}
	if !strings.Contains(result.Reason, "spool") {
		t.Errorf("expected reason to mention spools, got: %s", result.Reason)
	}
}

func TestCanCreateWorkOrder_NonPositiveTotals(t *testing.T) {
	ctx := validCreateContext()
	ctx.TotalOrderWeight = 0
	if CanCreateWorkOrder(ctx).Allowed {
		t.Error("expected zero order weight to be rejected")
	}

	ctx = validCreateContext()
	ctx.TotalOrderLength = -5
	if CanCreateWorkOrder(ctx).Allowed {
		t.Error("expected negative order length to be rejected")
	}
}

func TestCanCreateWorkOrder_ZeroLineSpeed(t *testing.T) {
	ctx := validCreateContext()
	ctx.LineSpeed = 0

	result := CanCreateWorkOrder(ctx)
	if result.Allowed {
		t.Fatal("expected zero line speed to be rejected")
	}
	if !strings.Contains(result.Reason, "line speed") {
		t.Errorf("expected reason to mention line speed, got: %s", result.Reason)
	}
}
