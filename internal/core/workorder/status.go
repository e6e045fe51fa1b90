package workorder

import "fmt"

// Status represents the possible states of a work order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// transitions is the explicit status transition table. A status is always
// allowed to transition to itself so repeated updates are idempotent.
var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// TransitionError reports a rejected status transition.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition work order from %s to %s", e.From, e.To)
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := transitions[s]; !ok {
		return "", fmt.Errorf("unknown work order status: %q", raw)
	}
	return s, nil
}

// CanTransition evaluates the transition table. Same-status transitions
// are always allowed (no-op).
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return &TransitionError{From: from, To: to}
}

// InitialStatus returns the status assigned to a newly created work order.
func InitialStatus() Status {
	return StatusPending
}
