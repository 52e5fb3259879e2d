package app

import (
	"math"
	"time"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/efficiency"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

// Item is a domain neutral view of one record.
type Item struct {
	Name      string  `json:"name"`
	Primary   float64 `json:"primary"`
	Objective float64 `json:"objective"`
	// Deadline is zero for records without a horizon.
	Deadline float64 `json:"deadline,omitempty"`
	// Cumulative is the running primary total up to and including the item.
	Cumulative float64 `json:"cumulative"`
	Ratio      float64 `json:"ratio"`
}

// Selection is an ordered set of items with its totals.
type Selection struct {
	Items          []Item  `json:"items"`
	TotalPrimary   float64 `json:"total_primary"`
	TotalObjective float64 `json:"total_objective"`
}

// DomainReport is the outcome of one run of both selectors on a domain.
type DomainReport struct {
	RunID      string        `json:"run_id"`
	Domain     model.Domain  `json:"-"`
	DomainName string        `json:"domain"`
	SortKey    model.SortKey `json:"-"`
	SortBy     string        `json:"sort_by"`
	Capacity   float64       `json:"capacity"`
	Records    int           `json:"records"`
	Greedy     Selection     `json:"greedy"`
	Optimal    Selection     `json:"optimal"`
	// Bound is the fractional relaxation upper bound on Optimal.
	Bound              float64       `json:"bound"`
	Ratio              float64       `json:"ratio"`
	GreedyDuration     time.Duration `json:"greedy_duration_ns"`
	ExhaustiveDuration time.Duration `json:"exhaustive_duration_ns"`
	Time               time.Time     `json:"time"`
}

// AnalysisReport compares both domains. Runs holds the latest report of each
// domain that ran, in model.Domains order.
type AnalysisReport struct {
	Comparisons []efficiency.Comparison `json:"comparisons"`
	Runs        []DomainReport          `json:"runs"`
	Time        time.Time               `json:"time"`
}

// Run returns the latest report for d, if any.
func (a AnalysisReport) Run(d model.Domain) (DomainReport, bool) {
	for _, r := range a.Runs {
		if r.Domain == d {
			return r, true
		}
	}
	return DomainReport{}, false
}

func newSelection[T model.Record](items []T) Selection {
	s := Selection{Items: make([]Item, 0, len(items))}
	for _, it := range items {
		s.TotalPrimary += it.Primary()
		s.TotalObjective += it.Objective()
		s.Items = append(s.Items, newItem(it, s.TotalPrimary))
	}
	return s
}

func newItem(r model.Record, cumulative float64) Item {
	it := Item{
		Name:       r.Label(),
		Primary:    r.Primary(),
		Objective:  r.Objective(),
		Cumulative: cumulative,
		Ratio:      model.Ratio(r),
	}
	if h := r.Horizon(); !math.IsInf(h, 1) {
		it.Deadline = h
	}
	return it
}
