package metrics

import (
	"time"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/efficiency"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

// RunEvent describes one run of both selectors on a domain.
type RunEvent struct {
	RunID              string
	Domain             model.Domain
	SortKey            model.SortKey
	Records            int
	Capacity           float64
	Selected           int
	GreedyPrimary      float64
	GreedyObjective    float64
	OptimalObjective   float64
	Bound              float64
	GreedyDuration     time.Duration
	ExhaustiveDuration time.Duration
	Time               time.Time
}

// Ratio returns the efficiency of the run.
func (e RunEvent) Ratio() float64 {
	return efficiency.Ratio(e.GreedyObjective, e.OptimalObjective)
}

// Sink records run results for observability purposes.
type Sink interface {
	RecordRun(ev RunEvent) error
}

// ComparisonEvent captures an efficiency analysis over both domains.
type ComparisonEvent struct {
	Comparisons []efficiency.Comparison
	Time        time.Time
}

// ComparisonRecorder is implemented by sinks able to record analyses.
type ComparisonRecorder interface {
	RecordComparison(ev ComparisonEvent) error
}

// Flusher is implemented by sinks that buffer data until the process ends.
type Flusher interface {
	Flush() error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error               { return nil }
func (NopSink) RecordComparison(ComparisonEvent) error { return nil }
func (NopSink) Flush() error                           { return nil }
