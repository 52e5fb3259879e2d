package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

// WriteRun prints the result of one ScheduleJobs or SelectResources call.
func WriteRun(w io.Writer, rep app.DomainReport) error {
	d := rep.Domain
	if d == model.DomainJobs {
		sectionHeader(w, "SCHEDULING JOBS...")
	} else {
		sectionHeader(w, "SELECTING RESOURCES...")
	}
	fmt.Fprintf(w, "\nSort By: %s\n\n", rep.SortKey.Label(d))

	if d == model.DomainJobs {
		subHeader(w, green, "Greedy Schedule:")
	} else {
		subHeader(w, green, "Greedy Selection:")
	}
	if len(rep.Greedy.Items) == 0 {
		if d == model.DomainJobs {
			fmt.Fprintln(w, "  (No jobs could be scheduled within constraints)")
		} else {
			fmt.Fprintln(w, "  (No resources selected within budget)")
		}
	} else if err := ItemTable(w, d, rep.Greedy.Items); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if d == model.DomainJobs {
		fmt.Fprintf(w, "Available Time: %s | Total Time Used: %s\n", capacity(d, rep.Capacity), primary(d, rep.Greedy.TotalPrimary))
	} else {
		fmt.Fprintf(w, "Budget: %s | Total Cost: %s\n", capacity(d, rep.Capacity), primary(d, rep.Greedy.TotalPrimary))
	}
	fmt.Fprintf(w, "Total %s: %s\n\n", capitalize(d.ObjectiveName()), money(rep.Greedy.TotalObjective))
	_, _ = cyan.Fprintf(w, "Brute Force Optimal %s: %s\n", capitalize(d.ObjectiveName()), money(rep.Optimal.TotalObjective))
	fmt.Fprintf(w, "Relaxation Upper Bound: %s\n", money(round2(rep.Bound)))
	_, _ = yellow.Fprintf(w, "Efficiency of Greedy: %.2f%%\n", rep.Ratio)
	fmt.Fprintf(w, "Run Time: greedy %s | brute force %s\n",
		rep.GreedyDuration.Round(time.Microsecond), rep.ExhaustiveDuration.Round(time.Microsecond))
	fmt.Fprintln(w, rule("="))
	return nil
}

// ItemTable renders items with their running totals.
func ItemTable(w io.Writer, d model.Domain, items []app.Item) error {
	table := tablewriter.NewWriter(w)
	header := []any{"#", "Name", capitalize(d.PrimaryName())}
	if d == model.DomainJobs {
		header = append(header, "Deadline")
	}
	header = append(header, capitalize(d.ObjectiveName()), "Ratio", "Cumulative")
	table.Header(header...)

	for i, it := range items {
		row := []any{i + 1, it.Name, num(it.Primary)}
		if d == model.DomainJobs {
			row = append(row, num(it.Deadline))
		}
		row = append(row, money(it.Objective), fmt.Sprintf("%.2f", it.Ratio), primary(d, it.Cumulative))
		if err := table.Append(row...); err != nil {
			return err
		}
	}
	return table.Render()
}
