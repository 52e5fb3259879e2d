package model

import (
	"errors"
	"math"
)

// Record is a candidate item handled by the selectors. Jobs and resources
// expose the same four quantities so the algorithms can stay generic.
type Record interface {
	// Label returns the display name of the record.
	Label() string
	// Primary returns the capacity-constrained amount the record consumes
	// (duration for jobs, cost for resources).
	Primary() float64
	// Objective returns the value maximised by the selectors
	// (profit for jobs, benefit for resources).
	Objective() float64
	// Horizon returns the largest cumulative primary metric at which the
	// record may still be admitted. Resources are unbounded.
	Horizon() float64
}

var (
	// ErrNegativeCapacity is returned when a run is requested with a
	// negative time limit or budget.
	ErrNegativeCapacity = errors.New("capacity must not be negative")
	// ErrUnknownSortKey is returned for sort keys outside the known set.
	ErrUnknownSortKey = errors.New("unknown sort key")
)

// ValidateCapacity checks the per-run capacity constraint.
func ValidateCapacity(capacity float64) error {
	if capacity < 0 || math.IsNaN(capacity) {
		return ErrNegativeCapacity
	}
	return nil
}

// Ratio returns objective per unit of primary metric. A non-positive primary
// metric yields +Inf so that free records rank first.
func Ratio(r Record) float64 {
	p := r.Primary()
	if p <= 0 {
		return math.Inf(1)
	}
	return r.Objective() / p
}

// Fits reports whether r can be admitted when the cumulative primary metric,
// including r itself, reaches cumulative.
func Fits(r Record, cumulative float64) bool {
	return cumulative <= r.Horizon()
}
