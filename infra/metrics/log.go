package metrics

import (
	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/logger"
)

// LogSink writes every event as a structured log line.
type LogSink struct {
	log logger.Logger
}

// NewLogSink returns a LogSink. A nil logger uses the "metrics" component.
func NewLogSink(log logger.Logger) *LogSink {
	if log == nil {
		log = logger.New("metrics")
	}
	return &LogSink{log: log}
}

// RecordRun implements coremetrics.Sink.
func (s *LogSink) RecordRun(ev coremetrics.RunEvent) error {
	s.log.Infow("selector run", map[string]any{
		"run_id":        ev.RunID,
		"domain":        ev.Domain.String(),
		"sort_key":      ev.SortKey.String(),
		"records":       ev.Records,
		"capacity":      ev.Capacity,
		"greedy":        ev.GreedyObjective,
		"optimal":       ev.OptimalObjective,
		"bound":         ev.Bound,
		"ratio":         ev.Ratio(),
		"greedy_ms":     float64(ev.GreedyDuration.Microseconds()) / 1000,
		"exhaustive_ms": float64(ev.ExhaustiveDuration.Microseconds()) / 1000,
	})
	return nil
}

// RecordComparison implements coremetrics.ComparisonRecorder.
func (s *LogSink) RecordComparison(ev coremetrics.ComparisonEvent) error {
	for _, c := range ev.Comparisons {
		s.log.Infow("efficiency", map[string]any{
			"domain":  c.DomainName,
			"greedy":  c.Greedy,
			"optimal": c.Optimal,
			"ratio":   c.Ratio,
		})
	}
	return nil
}
