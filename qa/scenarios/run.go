package scenarios

import (
	"fmt"
	"math"
	"slices"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

const tolerance = 1e-9

// Result is the outcome of one scenario.
type Result struct {
	Scenario string
	Report   app.DomainReport
	Failures []string
}

func (r Result) Passed() bool { return len(r.Failures) == 0 }

// Run loads the scenario records into a fresh session, runs the domain and
// checks the expectations. A nil sink discards metrics.
func Run(sc *Scenario, sink coremetrics.Sink) (Result, error) {
	d, err := model.ParseDomain(sc.Domain)
	if err != nil {
		return Result{}, err
	}
	key, err := model.ParseSortKey(sc.SortBy)
	if err != nil {
		return Result{}, err
	}
	s := app.NewSession(app.Options{Sink: sink})

	var rep app.DomainReport
	if d == model.DomainJobs {
		for _, j := range sc.Jobs {
			s.AddJobs(j.ToModel())
		}
		rep, err = s.ScheduleJobs(sc.Capacity, key)
	} else {
		for _, r := range sc.Resources {
			s.AddResources(r.ToModel())
		}
		rep, err = s.SelectResources(sc.Capacity, key)
	}
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	res := Result{Scenario: sc.Name, Report: rep}
	exp := sc.Expected
	check := func(name string, want *float64, got float64) {
		if want != nil && math.Abs(*want-got) > tolerance {
			res.Failures = append(res.Failures, fmt.Sprintf("%s: expected %v, got %v", name, *want, got))
		}
	}
	check("greedy", exp.Greedy, rep.Greedy.TotalObjective)
	check("optimal", exp.Optimal, rep.Optimal.TotalObjective)
	check("ratio", exp.Ratio, rep.Ratio)
	if exp.Selected != nil && !slices.Equal(exp.Selected, names(rep.Greedy)) {
		res.Failures = append(res.Failures, fmt.Sprintf("selected: expected %v, got %v", exp.Selected, names(rep.Greedy)))
	}
	if exp.Witness != nil && !slices.Equal(exp.Witness, names(rep.Optimal)) {
		res.Failures = append(res.Failures, fmt.Sprintf("witness: expected %v, got %v", exp.Witness, names(rep.Optimal)))
	}
	if rep.Bound+tolerance < rep.Optimal.TotalObjective {
		res.Failures = append(res.Failures, fmt.Sprintf("bound %v below optimum %v", rep.Bound, rep.Optimal.TotalObjective))
	}
	return res, nil
}

func names(s app.Selection) []string {
	out := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		out = append(out, it.Name)
	}
	return out
}
