package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/config"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/efficiency"
	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/selector"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/logger"
	_ "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/metrics" // register sinks
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/internal/eventbus"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/pkg/ingest"
)

var (
	// ErrNoRecords is returned when a domain is run before any record was added.
	ErrNoRecords = errors.New("no records to select from")
	// ErrTooManyRecords is returned when a working set exceeds the
	// configured exhaustive search limit.
	ErrTooManyRecords = errors.New("too many records for exhaustive search")
)

// Event is published on the session bus. Exactly one field is set.
type Event struct {
	Run        *coremetrics.RunEvent
	Comparison *coremetrics.ComparisonEvent
}

// Options configures a Session. Zero fields get no-op defaults.
type Options struct {
	Logger logger.Logger
	Sink   coremetrics.Sink
	Bus    *eventbus.Bus[Event]
	Limits config.ExhaustiveConfig
}

// Session holds the working sets and the latest results of both domains.
// It replaces process wide state and is not safe for concurrent use.
type Session struct {
	jobs      *model.WorkingSet[model.Job]
	resources *model.WorkingSet[model.Resource]
	shared    efficiency.SharedMetrics
	cycles    [2]efficiency.Lifecycle
	last      [2]*DomainReport

	log    logger.Logger
	sink   coremetrics.Sink
	bus    *eventbus.Bus[Event]
	limits config.ExhaustiveConfig
	now    func() time.Time
}

// NewSession creates an empty session.
func NewSession(o Options) *Session {
	if o.Logger == nil {
		o.Logger = logger.NopLogger{}
	}
	if o.Sink == nil {
		o.Sink = coremetrics.NopSink{}
	}
	if o.Bus == nil {
		o.Bus = eventbus.New[Event](eventbus.DefaultBuffer)
	}
	return &Session{
		jobs:      model.NewWorkingSet[model.Job](),
		resources: model.NewWorkingSet[model.Resource](),
		log:       o.Logger,
		sink:      o.Sink,
		bus:       o.Bus,
		limits:    o.Limits,
		now:       time.Now,
	}
}

// New creates a Session from the configuration.
func New(cfg *config.Config) (*Session, error) {
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return NewSession(Options{
		Logger: logger.New("session"),
		Sink:   sink,
		Limits: cfg.Exhaustive,
	}), nil
}

// AddJob validates name, duration, deadline and profit and appends the job.
func (s *Session) AddJob(fields []string) (model.Job, error) {
	j, err := ingest.ParseJob(fields)
	if err != nil {
		return model.Job{}, err
	}
	s.AddJobs(j)
	return j, nil
}

// AddResource validates name, cost and benefit and appends the resource.
func (s *Session) AddResource(fields []string) (model.Resource, error) {
	r, err := ingest.ParseResource(fields)
	if err != nil {
		return model.Resource{}, err
	}
	s.AddResources(r)
	return r, nil
}

// AddJobs appends already validated jobs.
func (s *Session) AddJobs(jobs ...model.Job) {
	if len(jobs) == 0 {
		return
	}
	s.jobs.Append(jobs...)
	s.recordsAdded(model.DomainJobs, len(jobs))
}

// AddResources appends already validated resources.
func (s *Session) AddResources(res ...model.Resource) {
	if len(res) == 0 {
		return
	}
	s.resources.Append(res...)
	s.recordsAdded(model.DomainResources, len(res))
}

// ImportJobs appends every job of a tabular source and returns how many
// were added. Nothing is added when the source is rejected.
func (s *Session) ImportJobs(r io.Reader, format ingest.Format) (int, error) {
	jobs, err := ingest.ReadJobs(r, format)
	if err != nil {
		return 0, err
	}
	s.AddJobs(jobs...)
	return len(jobs), nil
}

// ImportResources appends every resource of a tabular source.
func (s *Session) ImportResources(r io.Reader, format ingest.Format) (int, error) {
	res, err := ingest.ReadResources(r, format)
	if err != nil {
		return 0, err
	}
	s.AddResources(res...)
	return len(res), nil
}

// Jobs returns a copy of the job working set in insertion order.
func (s *Session) Jobs() []model.Job { return s.jobs.Items() }

// Resources returns a copy of the resource working set in insertion order.
func (s *Session) Resources() []model.Resource { return s.resources.Items() }

// Metrics returns the totals of the latest run of each domain.
func (s *Session) Metrics() efficiency.SharedMetrics { return s.shared }

// State returns the lifecycle state of d.
func (s *Session) State(d model.Domain) efficiency.State { return s.cycles[d].State() }

// Last returns the latest report of d.
func (s *Session) Last(d model.Domain) (DomainReport, bool) {
	if r := s.last[d]; r != nil {
		return *r, true
	}
	return DomainReport{}, false
}

// Subscribe returns a channel receiving run and comparison events.
func (s *Session) Subscribe() <-chan Event { return s.bus.Subscribe() }

// Unsubscribe stops delivery to a channel returned by Subscribe.
func (s *Session) Unsubscribe(ch <-chan Event) { s.bus.Unsubscribe(ch) }

// ScheduleJobs runs both selectors on the jobs within timeLimit hours.
func (s *Session) ScheduleJobs(timeLimit float64, key model.SortKey) (DomainReport, error) {
	return runDomain(s, model.DomainJobs, s.jobs.Items(), timeLimit, key)
}

// SelectResources runs both selectors on the resources within budget.
func (s *Session) SelectResources(budget float64, key model.SortKey) (DomainReport, error) {
	return runDomain(s, model.DomainResources, s.resources.Items(), budget, key)
}

// Analyze compares both domains from the latest totals. A domain that never
// ran contributes zero totals.
func (s *Session) Analyze() AnalysisReport {
	rep := AnalysisReport{
		Comparisons: efficiency.CompareAll(s.shared),
		Time:        s.now(),
	}
	for _, d := range model.Domains {
		if r := s.last[d]; r != nil {
			rep.Runs = append(rep.Runs, *r)
		}
		if !s.cycles[d].HasRun() {
			continue
		}
		if _, err := s.cycles[d].Fire(efficiency.EventCompared); err != nil {
			// records added after the last run; totals are still those of that run
			s.log.Debugf("%s: %v", d, err)
		}
	}

	ev := coremetrics.ComparisonEvent{Comparisons: rep.Comparisons, Time: rep.Time}
	if cr, ok := s.sink.(coremetrics.ComparisonRecorder); ok {
		if err := cr.RecordComparison(ev); err != nil {
			s.log.Errorf("record comparison: %v", err)
		}
	}
	s.bus.Publish(Event{Comparison: &ev})
	for _, c := range rep.Comparisons {
		s.log.Infow("efficiency", map[string]any{
			"domain":  c.DomainName,
			"greedy":  c.Greedy,
			"optimal": c.Optimal,
			"ratio":   c.Ratio,
		})
	}
	return rep
}

// Close flushes buffered metrics and closes the event bus.
func (s *Session) Close() error {
	s.bus.Close()
	if f, ok := s.sink.(coremetrics.Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (s *Session) recordsAdded(d model.Domain, n int) {
	if _, err := s.cycles[d].Fire(efficiency.EventRecordsAdded); err != nil {
		s.log.Errorf("%s: %v", d, err)
	}
	s.log.Debugw("records added", map[string]any{"domain": d.String(), "added": n, "total": s.size(d)})
}

func (s *Session) size(d model.Domain) int {
	if d == model.DomainJobs {
		return s.jobs.Len()
	}
	return s.resources.Len()
}

func (s *Session) checkSize(d model.Domain, n int) error {
	if n == 0 {
		return fmt.Errorf("%s: %w", d, ErrNoRecords)
	}
	if s.limits.MaxRecords > 0 && n > s.limits.MaxRecords {
		return fmt.Errorf("%s: %w: %d > %d", d, ErrTooManyRecords, n, s.limits.MaxRecords)
	}
	if s.limits.WarnAbove > 0 && n > s.limits.WarnAbove {
		s.log.Warnf("%s: exhaustive search over %d records evaluates %d subsets", d, n, subsetCount(n))
	}
	return nil
}

func subsetCount(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

func runDomain[T model.Record](s *Session, d model.Domain, items []T, capacity float64, key model.SortKey) (DomainReport, error) {
	if err := model.ValidateCapacity(capacity); err != nil {
		return DomainReport{}, err
	}
	if !key.Valid() {
		return DomainReport{}, fmt.Errorf("%w: %d", model.ErrUnknownSortKey, key)
	}
	if err := s.checkSize(d, len(items)); err != nil {
		return DomainReport{}, err
	}
	lc := &s.cycles[d]

	start := time.Now()
	greedy, err := selector.Greedy(items, capacity, key)
	if err != nil {
		return DomainReport{}, err
	}
	greedyDur := time.Since(start)
	if _, err := lc.Fire(efficiency.EventGreedyDone); err != nil {
		return DomainReport{}, err
	}

	start = time.Now()
	optimal, err := selector.Exhaustive(items, capacity)
	if err != nil {
		return DomainReport{}, err
	}
	exhaustiveDur := time.Since(start)
	if _, err := lc.Fire(efficiency.EventOptimalDone); err != nil {
		return DomainReport{}, err
	}

	bound, err := selector.RelaxationBound(items, capacity)
	if err != nil {
		s.log.Warnf("%s: relaxation bound: %v", d, err)
	}

	s.shared = s.shared.With(d, efficiency.Totals{Greedy: greedy.TotalObjective, Optimal: optimal.TotalObjective})

	rep := DomainReport{
		RunID:              uuid.NewString(),
		Domain:             d,
		DomainName:         d.String(),
		SortKey:            key,
		SortBy:             key.String(),
		Capacity:           capacity,
		Records:            len(items),
		Greedy:             newSelection(greedy.Selected),
		Optimal:            newSelection(optimal.Witness),
		Bound:              bound,
		Ratio:              efficiency.Ratio(greedy.TotalObjective, optimal.TotalObjective),
		GreedyDuration:     greedyDur,
		ExhaustiveDuration: exhaustiveDur,
		Time:               s.now(),
	}
	s.last[d] = &rep

	ev := coremetrics.RunEvent{
		RunID:              rep.RunID,
		Domain:             d,
		SortKey:            key,
		Records:            rep.Records,
		Capacity:           capacity,
		Selected:           len(greedy.Selected),
		GreedyPrimary:      greedy.TotalPrimary,
		GreedyObjective:    greedy.TotalObjective,
		OptimalObjective:   optimal.TotalObjective,
		Bound:              bound,
		GreedyDuration:     greedyDur,
		ExhaustiveDuration: exhaustiveDur,
		Time:               rep.Time,
	}
	if err := s.sink.RecordRun(ev); err != nil {
		s.log.Errorf("record run: %v", err)
	}
	s.bus.Publish(Event{Run: &ev})
	s.log.Infow("selection run", map[string]any{
		"run_id":   rep.RunID,
		"domain":   rep.DomainName,
		"sort_by":  rep.SortBy,
		"records":  rep.Records,
		"capacity": capacity,
		"greedy":   greedy.TotalObjective,
		"optimal":  optimal.TotalObjective,
		"ratio":    rep.Ratio,
	})
	return rep, nil
}
