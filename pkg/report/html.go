package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/efficiency"
)

// Series colors of the HTML chart.
const (
	GreedyColor     = "#17a2b8"
	BruteForceColor = "#dc3545"
)

// WriteHTMLChart renders the greedy and brute force totals of every domain as
// a grouped bar chart page.
func WriteHTMLChart(w io.Writer, comps []efficiency.Comparison) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Greedy vs Brute Force Comparison"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: Currency + " Value"}),
	)

	categories := make([]string, 0, len(comps))
	greedy := make([]opts.BarData, 0, len(comps))
	optimal := make([]opts.BarData, 0, len(comps))
	for _, c := range comps {
		categories = append(categories, capitalize(c.DomainName))
		greedy = append(greedy, opts.BarData{Value: c.Greedy})
		optimal = append(optimal, opts.BarData{Value: c.Optimal})
	}
	bar.SetXAxis(categories).
		AddSeries("Greedy", greedy, charts.WithItemStyleOpts(opts.ItemStyle{Color: GreedyColor})).
		AddSeries("Brute Force", optimal, charts.WithItemStyleOpts(opts.ItemStyle{Color: BruteForceColor}))

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
