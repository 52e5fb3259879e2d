package report

import (
	"fmt"
	"io"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/efficiency"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

// WriteAnalysis prints the efficiency analysis with a breakdown of both
// selections per domain, the complexity notes and the bar chart.
func WriteAnalysis(w io.Writer, rep app.AnalysisReport) error {
	for _, c := range rep.Comparisons {
		obj := capitalize(c.Domain.ObjectiveName())
		_, _ = bold.Fprintf(w, "%s:\n", c.Domain.Title())
		fmt.Fprintf(w, "  Greedy %s: %s\n", obj, money(c.Greedy))
		fmt.Fprintf(w, "  Brute Force %s: %s\n", obj, money(c.Optimal))
		fmt.Fprintf(w, "  Efficiency: %.2f%%\n\n", c.Ratio)

		run, ok := rep.Run(c.Domain)
		if !ok {
			_, _ = red.Fprintf(w, "  Note: no %s run yet.\n\n", c.Domain)
			continue
		}
		greedyBreakdown(w, run)
		optimalBreakdown(w, run)
	}

	_, _ = bold.Fprintln(w, "Time Complexity:")
	fmt.Fprintf(w, "  Greedy: %s\n", efficiency.GreedyComplexity)
	fmt.Fprintf(w, "  Brute Force: %s\n\n", efficiency.ExhaustiveComplexity)

	return Chart(w, rep.Comparisons)
}

func greedyBreakdown(w io.Writer, run app.DomainReport) {
	if len(run.Greedy.Items) == 0 {
		return
	}
	d := run.Domain
	subHeader(w, green, "Greedy Solution Breakdown:")
	fmt.Fprintf(w, "  Strategy: %s\n", run.SortKey.Strategy(d))
	if d == model.DomainJobs {
		fmt.Fprint(w, "  Algorithm: Greedy (takes jobs in sorted order if they fit)\n\n")
	} else {
		fmt.Fprint(w, "  Algorithm: Greedy (takes resources in sorted order if they fit budget)\n\n")
	}
	for i, it := range run.Greedy.Items {
		fmt.Fprintf(w, "  %d. %s | Ratio: %.2f\n", i+1, itemLine(d, it), it.Ratio)
		if d == model.DomainJobs {
			fmt.Fprintf(w, "     └─ Selected because: Cumulative time (%s) ≤ %s limit AND ≤ %s hrs deadline\n",
				primary(d, it.Cumulative), capacity(d, run.Capacity), num(it.Deadline))
		} else {
			fmt.Fprintf(w, "     └─ Selected because: Cumulative cost (%s) ≤ %s budget\n",
				primary(d, it.Cumulative), capacity(d, run.Capacity))
		}
	}
	obj := capitalize(d.ObjectiveName())
	fmt.Fprintf(w, "\n  Summary: Selected %d %s %s\n", len(run.Greedy.Items), d, usage(run, run.Greedy))
	fmt.Fprintf(w, "  Total %s: %s\n", obj, money(run.Greedy.TotalObjective))
	fmt.Fprintf(w, "  Why This Result: Greedy algorithm makes locally optimal choice at each step by selecting %s in sorted order that fit constraints.\n\n", d)
}

func optimalBreakdown(w io.Writer, run app.DomainReport) {
	d := run.Domain
	if len(run.Optimal.Items) == 0 {
		fmt.Fprintf(w, "  Note: no feasible %s combination within the %s.\n\n", d, d.CapacityName())
		return
	}
	subHeader(w, cyan, "Brute Force Optimal Solution Breakdown:")
	for _, it := range run.Optimal.Items {
		fmt.Fprintf(w, "  • %s\n", itemLine(d, it))
		if d == model.DomainJobs {
			fmt.Fprintf(w, "    └─ Cumulative Time: %s (≤ %s limit, ≤ %s hrs deadline)\n",
				primary(d, it.Cumulative), capacity(d, run.Capacity), num(it.Deadline))
		} else {
			fmt.Fprintf(w, "    └─ Cumulative Cost: %s (≤ %s budget)\n",
				primary(d, it.Cumulative), capacity(d, run.Capacity))
		}
	}
	obj := d.ObjectiveName()
	fmt.Fprintf(w, "\n  Summary: Selected %d %s %s\n", len(run.Optimal.Items), d, usage(run, run.Optimal))
	fmt.Fprintf(w, "  Total %s: %s (This is the maximum possible %s)\n", capitalize(obj), money(run.Optimal.TotalObjective), obj)
	fmt.Fprintf(w, "  Why Optimal: Brute force tested ALL possible combinations (2ⁿ possibilities) and found this gives maximum %s.\n\n", obj)
}

func itemLine(d model.Domain, it app.Item) string {
	if d == model.DomainJobs {
		return fmt.Sprintf("%-20s | Duration: %-6.1f | Deadline: %-6.1f | Profit: %s", it.Name, it.Primary, it.Deadline, money(it.Objective))
	}
	return fmt.Sprintf("%-20s | Cost: %s%-8.2f | Benefit: %s", it.Name, Currency, it.Primary, money(it.Objective))
}

func usage(run app.DomainReport, s app.Selection) string {
	if run.Domain == model.DomainJobs {
		return fmt.Sprintf("using %.1f/%s hrs", s.TotalPrimary, num(run.Capacity))
	}
	return fmt.Sprintf("costing %s%.2f/%s", Currency, s.TotalPrimary, num(run.Capacity))
}
