package workorder

import (
	"errors"
	"testing"
)

func TestCanTransition_AllowedPaths(t *testing.T) {
	allowed := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCancelled},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
	}

	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Errorf("expected %s -> %s to be allowed, got %v", tc.from, tc.to, err)
		}
	}
}

func TestCanTransition_SameStatusIsNoOp(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled} {
		if err := CanTransition(s, s); err != nil {
			t.Errorf("expected %s -> %s to be allowed, got %v", s, s, err)
		}
	}
}

func TestCanTransition_RejectedPaths(t *testing.T) {
	rejected := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusCompleted},
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusInProgress},
		{StatusCancelled, StatusInProgress},
		{StatusCancelled, StatusCompleted},
		{StatusInProgress, StatusPending},
	}

	for _, tc := range rejected {
		err := CanTransition(tc.from, tc.to)
		if err == nil {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
			continue
		}
		var transitionErr *TransitionError
		if !errors.As(err, &transitionErr) {
			t.Errorf("expected *TransitionError for %s -> %s, got %T", tc.from, tc.to, err)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("in_progress"); err != nil {
		t.Errorf("expected in_progress to parse, got %v", err)
	}
	if _, err := ParseStatus("shipped"); err == nil {
		t.Error("expected unknown status to fail")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Error("expected empty status to fail")
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusPending {
		t.Errorf("expected new work orders to start pending, got %s", got)
	}
}
