package resource

import "fmt"

// TrimState tracks where a Controller is in its maintenance lifecycle.
type TrimState int

const (
	// TrimStateNone is the state of a controller that never started.
	TrimStateNone TrimState = iota
	// TrimStateInitialized means the periodic sweep is running.
	TrimStateInitialized
	// TrimStateTrimmed means the last action was a regular sweep.
	TrimStateTrimmed
	// TrimStateForceTrimmed means the last action was a forced sweep.
	TrimStateForceTrimmed
)

func (s TrimState) String() string {
	switch s {
	case TrimStateNone:
		return "none"
	case TrimStateInitialized:
		return "initialized"
	case TrimStateTrimmed:
		return "trimmed"
	case TrimStateForceTrimmed:
		return "force-trimmed"
	default:
		return fmt.Sprintf("TrimState(%d)", int(s))
	}
}

// TrimStateError indicates a lifecycle call that is invalid in the
// controller's current state.
type TrimStateError struct {
	State TrimState
	Op    string
}

func (e *TrimStateError) Error() string {
	return fmt.Sprintf("resource: cannot %s in state %s", e.Op, e.State)
}
