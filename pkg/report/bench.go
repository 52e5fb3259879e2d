package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Trial is the outcome of one random instance.
type Trial struct {
	Ratio      float64
	Greedy     time.Duration
	Exhaustive time.Duration
}

// BenchRow aggregates the trials of one instance size.
type BenchRow struct {
	Size       int           `json:"size"`
	Trials     int           `json:"trials"`
	Mean       float64       `json:"mean"`
	StdDev     float64       `json:"std_dev"`
	Min        float64       `json:"min"`
	Optimal    int           `json:"optimal"`
	Greedy     time.Duration `json:"greedy_ns"`
	Exhaustive time.Duration `json:"exhaustive_ns"`
}

// Summarize computes efficiency statistics over trials. Durations are means.
func Summarize(size int, trials []Trial) BenchRow {
	row := BenchRow{Size: size, Trials: len(trials)}
	if len(trials) == 0 {
		return row
	}
	ratios := make([]float64, len(trials))
	var g, e time.Duration
	for i, t := range trials {
		ratios[i] = t.Ratio
		if t.Ratio >= 100 {
			row.Optimal++
		}
		g += t.Greedy
		e += t.Exhaustive
	}
	row.Mean, row.StdDev = stat.MeanStdDev(ratios, nil)
	if len(ratios) == 1 {
		row.StdDev = 0
	}
	row.Min = floats.Min(ratios)
	row.Greedy = g / time.Duration(len(trials))
	row.Exhaustive = e / time.Duration(len(trials))
	return row
}

// WriteBench renders one table row per instance size.
func WriteBench(w io.Writer, title string, rows []BenchRow) error {
	sectionHeader(w, title)
	table := tablewriter.NewWriter(w)
	table.Header("Records", "Trials", "Mean %", "Std Dev", "Min %", "Optimal", "Greedy", "Brute Force")
	for _, r := range rows {
		if err := table.Append(
			r.Size,
			r.Trials,
			fmt.Sprintf("%.2f", r.Mean),
			fmt.Sprintf("%.2f", r.StdDev),
			fmt.Sprintf("%.2f", r.Min),
			fmt.Sprintf("%d/%d", r.Optimal, r.Trials),
			r.Greedy.Round(time.Microsecond).String(),
			r.Exhaustive.Round(time.Microsecond).String(),
		); err != nil {
			return err
		}
	}
	return table.Render()
}
