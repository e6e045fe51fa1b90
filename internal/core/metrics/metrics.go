// Package metrics contains the production metrics engine: pure computations
// over an assembled work order, its spools, and its production spec.
// No I/O, no store access.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/example/spoolworks/internal/core/workorder"
)

// Tolerance policy. Fixed constants, not per-material configuration:
// manual-entry data makes gross entry errors (wrong units, transposed
// digits) the dominant failure mode to catch.
const (
	// WeightTolerancePct is the allowed deviation between the summed
	// spool weights and the ordered total, in percent.
	WeightTolerancePct = 2.0

	// LengthTolerancePct bounds each spool's deviation from the even
	// split of the ordered length, as a percentage of that total length.
	LengthTolerancePct = 2.0

	// InsulationDelta is the allowed absolute difference between a
	// spool's insulation weight and the spec's insulation thickness.
	InsulationDelta = 0.02
)

// ErrUndefined is returned when a computation's denominator is zero and
// the result would be non-finite. Callers must treat the value as unknown
// rather than display it.
var ErrUndefined = errors.New("metric is undefined for this input")

// Validation is the outcome of the spec-tolerance checks. Details holds
// one human-readable message per violation, for operator display.
type Validation struct {
	Valid   bool
	Details []string
}

// ProductionEfficiency returns produced weight as a percentage of the
// ordered weight. Fails with ErrUndefined when the ordered weight is zero.
func ProductionEfficiency(order *workorder.WorkOrder, spools []workorder.Spool) (float64, error) {
	if order.TotalOrderWeight == 0 {
		return 0, fmt.Errorf("production efficiency: total order weight is zero: %w", ErrUndefined)
	}

	var produced float64
	for _, s := range spools {
		produced += s.NakedWeight
	}
	return produced / order.TotalOrderWeight * 100, nil
}

// ValidateSpoolSpecifications applies the three tolerance checks and
// accumulates every violation. All checks run even when an earlier one
// has already failed, so the operator sees the full picture at once.
func ValidateSpoolSpecifications(order *workorder.WorkOrder, spec *workorder.ProductionSpec, spools []workorder.Spool) Validation {
	var details []string

	// Check 1: summed spool weight vs ordered total.
	// Cross-multiplied comparison so a deviation of exactly the
	// tolerance stays compliant (strict greater-than). A zero ordered
	// weight (possible on unguarded legacy records) makes the check
	// undefined, which is itself a violation rather than a pass.
	var produced float64
	for _, s := range spools {
		produced += s.NakedWeight
	}
	if order.TotalOrderWeight == 0 {
		details = append(details, "weight tolerance undefined: ordered weight is zero")
	} else {
		deviation := math.Abs(produced - order.TotalOrderWeight)
		if deviation > order.TotalOrderWeight*(WeightTolerancePct/100) {
			pct := deviation / order.TotalOrderWeight * 100
			details = append(details, fmt.Sprintf("weight tolerance exceeded: %.2f%% (limit %.2f%%)", pct, WeightTolerancePct))
		}
	}

	// Check 2: each spool length vs the even split of the ordered length.
	if n := len(spools); n > 0 {
		target := order.TotalOrderLength / float64(n)
		limit := order.TotalOrderLength * (LengthTolerancePct / 100)
		for _, s := range spools {
			if math.Abs(s.Length-target) > limit {
				details = append(details, fmt.Sprintf("spool %d length %.2f m deviates more than %.2f%% from target %.2f m", s.SpoolNumber, s.Length, LengthTolerancePct, target))
			}
		}
	}

	// Check 3: insulation weight vs spec thickness. One aggregate
	// violation regardless of how many spools are off.
	if spec != nil {
		for _, s := range spools {
			if math.Abs(s.InsulationWeight-spec.InsulationThickness) > InsulationDelta {
				details = append(details, fmt.Sprintf("insulation thickness variation exceeds %.2f against spec %.2f", InsulationDelta, spec.InsulationThickness))
				break
			}
		}
	}

	return Validation{Valid: len(details) == 0, Details: details}
}

// EstimateProductionTime returns the estimated run time in minutes for
// the ordered length at the spec's line speed. Fails with ErrUndefined
// when the line speed is zero.
func EstimateProductionTime(spec *workorder.ProductionSpec, order *workorder.WorkOrder) (float64, error) {
	if spec.LineSpeed == 0 {
		return 0, fmt.Errorf("production time estimate: line speed is zero: %w", ErrUndefined)
	}
	return order.TotalOrderLength / spec.LineSpeed, nil
}
