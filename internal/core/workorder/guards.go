package workorder

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateWorkOrderContext provides context for work order creation guards.
// Evaluated before any write is attempted so rejected input leaves no
// partial state behind.
type CreateWorkOrderContext struct {
	CustomerName     string
	TotalOrderWeight float64
	TotalOrderLength float64
	SpoolCount       int
	LineSpeed        float64
}

// CanCreateWorkOrder evaluates whether a work order can be composed.
// Rules:
// - Customer name is required
// - At least one spool must be supplied
// - Order totals must be positive (they are divisors downstream)
// - Line speed must be positive (time-estimate divisor)
func CanCreateWorkOrder(ctx CreateWorkOrderContext) GuardResult {
	if ctx.CustomerName == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "customer name is required",
		}
	}

	if ctx.SpoolCount < 1 {
		return GuardResult{
			Allowed: false,
			Reason:  "a work order needs at least one spool",
		}
	}

	if ctx.TotalOrderWeight <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("total order weight must be positive (got %g kg)", ctx.TotalOrderWeight),
		}
	}

	if ctx.TotalOrderLength <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("total order length must be positive (got %g m)", ctx.TotalOrderLength),
		}
	}

	if ctx.LineSpeed <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("line speed must be positive (got %g m/min)", ctx.LineSpeed),
		}
	}

	return GuardResult{Allowed: true}
}
