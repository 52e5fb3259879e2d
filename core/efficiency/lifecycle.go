package efficiency

import (
	"errors"
	"fmt"
)

// State is the position of one domain in the compare workflow.
type State int

const (
	StateEmpty State = iota
	StateRecordsLoaded
	StateGreedyComputed
	StateOptimalComputed
	StateCompared
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateRecordsLoaded:
		return "records_loaded"
	case StateGreedyComputed:
		return "greedy_computed"
	case StateOptimalComputed:
		return "optimal_computed"
	case StateCompared:
		return "compared"
	default:
		return "unknown"
	}
}

// Event drives a Lifecycle.
type Event int

const (
	EventRecordsAdded Event = iota
	EventGreedyDone
	EventOptimalDone
	EventCompared
)

func (e Event) String() string {
	switch e {
	case EventRecordsAdded:
		return "records_added"
	case EventGreedyDone:
		return "greedy_done"
	case EventOptimalDone:
		return "optimal_done"
	case EventCompared:
		return "compared"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when an event is not allowed in the
// current state.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// Lifecycle tracks one domain. The zero value is StateEmpty.
type Lifecycle struct {
	state State
	runs  int
}

// State returns the current state.
func (l *Lifecycle) State() State { return l.state }

// Runs returns how many times both selectors completed.
func (l *Lifecycle) Runs() int { return l.runs }

// HasRun reports whether the domain produced results at least once. A domain
// that never ran contributes zero totals to comparisons.
func (l *Lifecycle) HasRun() bool { return l.runs > 0 }

// Fire applies e and returns the new state. The state is left unchanged on
// error.
func (l *Lifecycle) Fire(e Event) (State, error) {
	next, ok := transition(l.state, e)
	if !ok {
		return l.state, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, l.state)
	}
	l.state = next
	if e == EventOptimalDone {
		l.runs++
	}
	return next, nil
}

func transition(s State, e Event) (State, bool) {
	switch e {
	case EventRecordsAdded:
		return StateRecordsLoaded, true
	case EventGreedyDone:
		// a run needs records; reruns start from any later state
		if s == StateEmpty {
			return s, false
		}
		return StateGreedyComputed, true
	case EventOptimalDone:
		if s != StateGreedyComputed {
			return s, false
		}
		return StateOptimalComputed, true
	case EventCompared:
		if s != StateOptimalComputed && s != StateCompared {
			return s, false
		}
		return StateCompared, true
	default:
		return s, false
	}
}
