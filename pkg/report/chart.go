package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/efficiency"
)

// ChartWidth is the length in cells of the longest bar.
var ChartWidth = 40

// Chart draws greedy and brute force totals per domain as horizontal bars
// sharing one scale.
func Chart(w io.Writer, comps []efficiency.Comparison) error {
	_, _ = bold.Fprintln(w, "Greedy vs Brute Force Comparison")
	if len(comps) == 0 {
		_, err := fmt.Fprintln(w, "  (nothing to compare)")
		return err
	}
	values := make([]float64, 0, 2*len(comps))
	for _, c := range comps {
		values = append(values, c.Greedy, c.Optimal)
	}
	scale := floats.Max(values)

	for _, c := range comps {
		if _, err := fmt.Fprintf(w, "  %-10s Greedy      |%s %s\n", c.DomainName, bar(c.Greedy, scale), money(c.Greedy)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %-10s Brute Force |%s %s\n", "", bar(c.Optimal, scale), money(c.Optimal)); err != nil {
			return err
		}
	}
	return nil
}

func bar(v, scale float64) string {
	if !(scale > 0) || !(v > 0) {
		return ""
	}
	n := int(math.Round(v / scale * float64(ChartWidth)))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
