package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/logger"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/pkg/export"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/pkg/report"
)

var benchOpts struct {
	sizes      []int
	trials     int
	seed       int64
	domain     string
	sortBy     string
	format     string
	noProgress bool
}

var benchCmd = &cobra.Command{
	Use:     "bench",
	Short:   "Measure greedy efficiency on random instances of increasing size",
	Example: "  alloc bench --domain jobs --sizes 4,8,12 --trials 50 --sort-by max_profit",
	RunE:    runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntSliceVar(&benchOpts.sizes, "sizes", []int{4, 8, 12}, "instance sizes")
	f.IntVar(&benchOpts.trials, "trials", 20, "random instances per size")
	f.Int64Var(&benchOpts.seed, "seed", 1, "random seed")
	f.StringVar(&benchOpts.domain, "domain", model.DomainResources.String(), "jobs or resources")
	f.StringVar(&benchOpts.sortBy, "sort-by", model.SortBestRatio.String(), "greedy sort key")
	f.StringVar(&benchOpts.format, "format", formatText, "output format: text or json")
	f.BoolVar(&benchOpts.noProgress, "no-progress", false, "hide the progress bar")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := model.ParseDomain(benchOpts.domain)
	if err != nil {
		return err
	}
	key, err := model.ParseSortKey(benchOpts.sortBy)
	if err != nil {
		return err
	}
	if benchOpts.trials <= 0 {
		return fmt.Errorf("trials must be positive")
	}
	for _, n := range benchOpts.sizes {
		if n <= 0 {
			return fmt.Errorf("size must be positive, got %d", n)
		}
		if cfg.Exhaustive.MaxRecords > 0 && n > cfg.Exhaustive.MaxRecords {
			return fmt.Errorf("%w: size %d > %d", app.ErrTooManyRecords, n, cfg.Exhaustive.MaxRecords)
		}
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	log := logger.New("bench")

	var bar *progressbar.ProgressBar
	if !benchOpts.noProgress && benchOpts.format != formatJSON {
		bar = progressbar.NewOptions(len(benchOpts.sizes)*benchOpts.trials,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Running trials"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	rng := rand.New(rand.NewSource(benchOpts.seed))
	rows := make([]report.BenchRow, 0, len(benchOpts.sizes))
	for _, n := range benchOpts.sizes {
		trials := make([]report.Trial, 0, benchOpts.trials)
		for i := 0; i < benchOpts.trials; i++ {
			if bar != nil {
				bar.Describe(fmt.Sprintf("Size %d", n))
			}
			t, err := benchTrial(rng, d, key, n, sink)
			if err != nil {
				return err
			}
			trials = append(trials, t)
			if bar != nil {
				_ = bar.Add(1)
			}
		}
		row := report.Summarize(n, trials)
		log.Infow("bench size done", map[string]any{
			"domain": d.String(),
			"size":   n,
			"mean":   row.Mean,
			"min":    row.Min,
		})
		rows = append(rows, row)
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if f, ok := sink.(coremetrics.Flusher); ok {
		if err := f.Flush(); err != nil {
			log.Errorf("flush metrics: %v", err)
		}
	}

	out := cmd.OutOrStdout()
	if benchOpts.format == formatJSON {
		return export.WriteJSON(out, rows)
	}
	title := fmt.Sprintf("%s: %s over %d trials", d.Title(), key.Label(d), benchOpts.trials)
	return report.WriteBench(out, title, rows)
}

// benchTrial runs both selectors on one random instance of size n.
func benchTrial(rng *rand.Rand, d model.Domain, key model.SortKey, n int, sink coremetrics.Sink) (report.Trial, error) {
	s := app.NewSession(app.Options{Sink: sink})

	var (
		rep app.DomainReport
		err error
	)
	if d == model.DomainJobs {
		jobs, limit := randomJobs(rng, n)
		s.AddJobs(jobs...)
		rep, err = s.ScheduleJobs(limit, key)
	} else {
		res, budget := randomResources(rng, n)
		s.AddResources(res...)
		rep, err = s.SelectResources(budget, key)
	}
	if err != nil {
		return report.Trial{}, err
	}
	return report.Trial{Ratio: rep.Ratio, Greedy: rep.GreedyDuration, Exhaustive: rep.ExhaustiveDuration}, nil
}

// randomResources draws costs and benefits in [100, 1000) and a budget of
// half the total cost.
func randomResources(rng *rand.Rand, n int) ([]model.Resource, float64) {
	res := make([]model.Resource, n)
	var total float64
	for i := range res {
		res[i] = model.Resource{
			Name:    fmt.Sprintf("R%d", i+1),
			Cost:    roundTo(100+rng.Float64()*900, 0),
			Benefit: roundTo(100+rng.Float64()*900, 0),
		}
		total += res[i].Cost
	}
	return res, roundTo(total/2, 0)
}

// randomJobs draws durations in [1, 5) hours and deadlines between the
// duration and the total work, and a time limit of 60% of the total work.
// Jobs are returned in deadline order, for which the exhaustive prefix
// check is exact.
func randomJobs(rng *rand.Rand, n int) ([]model.Job, float64) {
	jobs := make([]model.Job, n)
	var total float64
	for i := range jobs {
		jobs[i].Duration = roundTo(1+rng.Float64()*4, 1)
		total += jobs[i].Duration
	}
	for i := range jobs {
		jobs[i].Name = fmt.Sprintf("J%d", i+1)
		jobs[i].Deadline = roundTo(jobs[i].Duration+rng.Float64()*(total-jobs[i].Duration), 1)
		jobs[i].Profit = roundTo(10+rng.Float64()*90, 0)
	}
	sort.SliceStable(jobs, func(a, b int) bool { return jobs[a].Deadline < jobs[b].Deadline })
	return jobs, roundTo(total*0.6, 1)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
