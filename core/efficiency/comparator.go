package efficiency

import (
	"math"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

// Static complexity annotations shown with every comparison.
const (
	GreedyComplexity     = "O(n log n)"
	ExhaustiveComplexity = "O(2ⁿ)"
)

// Comparison is the efficiency report for one domain.
type Comparison struct {
	Domain               model.Domain `json:"-"`
	DomainName           string       `json:"domain"`
	Greedy               float64      `json:"greedy"`
	Optimal              float64      `json:"optimal"`
	Ratio                float64      `json:"ratio"`
	GreedyComplexity     string       `json:"greedy_complexity"`
	ExhaustiveComplexity string       `json:"exhaustive_complexity"`
}

// Ratio returns greedy as a percentage of optimal rounded to two decimals.
// A non-positive optimum yields 0.
func Ratio(greedy, optimal float64) float64 {
	if !(optimal > 0) {
		return 0
	}
	return math.Round(greedy/optimal*100*100) / 100
}

// Compare builds the comparison for d from m.
func Compare(m SharedMetrics, d model.Domain) Comparison {
	t := m.Get(d)
	return Comparison{
		Domain:               d,
		DomainName:           d.String(),
		Greedy:               t.Greedy,
		Optimal:              t.Optimal,
		Ratio:                Ratio(t.Greedy, t.Optimal),
		GreedyComplexity:     GreedyComplexity,
		ExhaustiveComplexity: ExhaustiveComplexity,
	}
}

// CompareAll compares every domain in model.Domains order.
func CompareAll(m SharedMetrics) []Comparison {
	out := make([]Comparison, 0, len(model.Domains))
	for _, d := range model.Domains {
		out = append(out, Compare(m, d))
	}
	return out
}
