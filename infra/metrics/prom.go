package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
)

// PromSink records selector runs in Prometheus collectors. The process does
// not serve HTTP; collected values can be written to a node-exporter style
// textfile on Flush.
type PromSink struct {
	gatherer  prometheus.Gatherer
	textfile  string
	objective *prometheus.GaugeVec
	ratio     *prometheus.GaugeVec
	records   *prometheus.GaugeVec
	runs      *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewPromSink registers the collectors on a fresh registry.
func NewPromSink(textfile string) (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.NewRegistry(), textfile)
}

// NewPromSinkWithRegistry registers the collectors on reg. Collectors already
// registered on reg are reused.
func NewPromSinkWithRegistry(reg *prometheus.Registry, textfile string) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	objective, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "allocation_objective",
		Help: "Objective reached by the last run, per domain and strategy",
	}, []string{"domain", "strategy"}))
	if err != nil {
		return nil, err
	}
	ratio, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "allocation_efficiency_ratio",
		Help: "Greedy objective as a percentage of the exhaustive optimum",
	}, []string{"domain"}))
	if err != nil {
		return nil, err
	}
	records, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "allocation_working_set_records",
		Help: "Number of records in the working set of the last run",
	}, []string{"domain"}))
	if err != nil {
		return nil, err
	}
	runs, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_runs_total",
		Help: "Number of selector runs",
	}, []string{"domain", "sort_key"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "allocation_run_duration_seconds",
		Help:    "Wall time spent in each selector",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	}, []string{"domain", "strategy"}))
	if err != nil {
		return nil, err
	}
	return &PromSink{
		gatherer:  reg,
		textfile:  textfile,
		objective: objective,
		ratio:     ratio,
		records:   records,
		runs:      runs,
		duration:  duration,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordRun implements coremetrics.Sink.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	d := ev.Domain.String()
	s.objective.WithLabelValues(d, "greedy").Set(ev.GreedyObjective)
	s.objective.WithLabelValues(d, "exhaustive").Set(ev.OptimalObjective)
	s.objective.WithLabelValues(d, "bound").Set(ev.Bound)
	s.ratio.WithLabelValues(d).Set(ev.Ratio())
	s.records.WithLabelValues(d).Set(float64(ev.Records))
	s.runs.WithLabelValues(d, ev.SortKey.String()).Inc()
	s.duration.WithLabelValues(d, "greedy").Observe(ev.GreedyDuration.Seconds())
	s.duration.WithLabelValues(d, "exhaustive").Observe(ev.ExhaustiveDuration.Seconds())
	return nil
}

// RecordComparison implements coremetrics.ComparisonRecorder.
func (s *PromSink) RecordComparison(ev coremetrics.ComparisonEvent) error {
	for _, c := range ev.Comparisons {
		s.ratio.WithLabelValues(c.DomainName).Set(c.Ratio)
	}
	return nil
}

// Flush writes the gathered metrics to the configured textfile, if any.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(s.textfile, s.gatherer)
}
