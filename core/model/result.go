package model

// RunResult is the outcome of one selector on one working set.
type RunResult[T Record] struct {
	// Selected holds the admitted records in admission order. Exhaustive
	// runs leave it empty and only report the best total.
	Selected []T
	// TotalPrimary is the consumed time or cost. Unused by exhaustive runs.
	TotalPrimary float64
	// TotalObjective is the achieved profit or benefit.
	TotalObjective float64
	// Witness is the first subset found with TotalObjective during an
	// exhaustive run, in enumeration order. Empty for greedy runs.
	Witness []T
}

// Empty reports whether no record was selected.
func (r RunResult[T]) Empty() bool {
	return len(r.Selected) == 0
}
