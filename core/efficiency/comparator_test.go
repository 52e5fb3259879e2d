package efficiency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		name    string
		greedy  float64
		optimal float64
		want    float64
	}{
		{"equal", 15000, 15000, 100},
		{"partial", 50, 60, 83.33},
		{"two thirds", 2, 3, 66.67},
		{"zero optimal", 10, 0, 0},
		{"negative optimal", 10, -4, 0},
		{"both zero", 0, 0, 0},
	}
	for _, c := range cases {
		if got := Ratio(c.greedy, c.optimal); got != c.want {
			t.Fatalf("%s: expected %v got %v", c.name, c.want, got)
		}
	}
}

func TestCompareUsesDomainSlots(t *testing.T) {
	var m SharedMetrics
	m = m.With(model.DomainJobs, Totals{Greedy: 50, Optimal: 50})
	m = m.With(model.DomainResources, Totals{Greedy: 12000, Optimal: 15000})

	jobs := Compare(m, model.DomainJobs)
	assert.Equal(t, 100.0, jobs.Ratio)
	assert.Equal(t, "jobs", jobs.DomainName)
	assert.Equal(t, GreedyComplexity, jobs.GreedyComplexity)
	assert.Equal(t, ExhaustiveComplexity, jobs.ExhaustiveComplexity)

	res := Compare(m, model.DomainResources)
	assert.Equal(t, 80.0, res.Ratio)
}

func TestCompareAllZeroValue(t *testing.T) {
	all := CompareAll(SharedMetrics{})
	if len(all) != 2 {
		t.Fatalf("expected 2 comparisons got %d", len(all))
	}
	for _, c := range all {
		if c.Ratio != 0 || c.Greedy != 0 || c.Optimal != 0 {
			t.Fatalf("expected zero comparison got %+v", c)
		}
	}
	if all[0].Domain != model.DomainJobs || all[1].Domain != model.DomainResources {
		t.Fatalf("unexpected order %+v", all)
	}
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	var m SharedMetrics
	n := m.With(model.DomainJobs, Totals{Greedy: 1, Optimal: 2})
	if m.Jobs != (Totals{}) {
		t.Fatalf("receiver mutated: %+v", m)
	}
	if n.Get(model.DomainJobs).Optimal != 2 {
		t.Fatalf("expected stored totals got %+v", n)
	}
	if n.Get(model.Domain(7)) != (Totals{}) {
		t.Fatalf("unknown domain must read zero totals")
	}
}
