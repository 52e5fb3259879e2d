package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/logger"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/pkg/report"
)

var analyzeOpts struct {
	jobsInput      string
	resourcesInput string
	jobs           []string
	resources      []string
	timeLimit      float64
	budget         float64
	jobsSortBy     string
	resourcesSort  string
	format         string
	html           string
}

var analyzeCmd = &cobra.Command{
	Use:     "analyze",
	Short:   "Run both domains and compare greedy efficiency side by side",
	Example: "  alloc analyze --jobs jobs.csv --resources resources.xlsx --budget 8000",
	RunE:    runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeOpts.jobsInput, "jobs", "", "CSV or XLSX file of jobs")
	f.StringVar(&analyzeOpts.resourcesInput, "resources", "", "CSV or XLSX file of resources")
	f.StringArrayVar(&analyzeOpts.jobs, "job", nil, `job as "name,duration,deadline,profit" (repeatable)`)
	f.StringArrayVar(&analyzeOpts.resources, "resource", nil, `resource as "name,cost,benefit" (repeatable)`)
	f.Float64Var(&analyzeOpts.timeLimit, "time-limit", 0, "available hours (default from config)")
	f.Float64Var(&analyzeOpts.budget, "budget", 0, "available budget (default from config)")
	f.StringVar(&analyzeOpts.jobsSortBy, "jobs-sort-by", "", "job sort key (default from config)")
	f.StringVar(&analyzeOpts.resourcesSort, "resources-sort-by", "", "resource sort key (default from config)")
	f.StringVar(&analyzeOpts.format, "format", formatText, "output format: text, json or csv")
	f.StringVar(&analyzeOpts.html, "html", "", "also write the comparison bar chart to this HTML file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, closeSession, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession()
	log := logger.New("analyze")

	if err := loadJobs(s, analyzeOpts.jobsInput, analyzeOpts.jobs); err != nil {
		return err
	}
	if err := loadResources(s, analyzeOpts.resourcesInput, analyzeOpts.resources); err != nil {
		return err
	}

	limit := cfg.Jobs.TimeLimit
	if cmd.Flags().Changed("time-limit") {
		limit = analyzeOpts.timeLimit
	}
	jobKey, err := model.ParseSortKey(pick(analyzeOpts.jobsSortBy, cfg.Jobs.SortBy))
	if err != nil {
		return err
	}
	if _, err := s.ScheduleJobs(limit, jobKey); err != nil {
		if !errors.Is(err, app.ErrNoRecords) {
			return err
		}
		log.Warnf("skipping jobs: %v", err)
	}

	budget := cfg.Resources.Budget
	if cmd.Flags().Changed("budget") {
		budget = analyzeOpts.budget
	}
	resKey, err := model.ParseSortKey(pick(analyzeOpts.resourcesSort, cfg.Resources.SortBy))
	if err != nil {
		return err
	}
	if _, err := s.SelectResources(budget, resKey); err != nil {
		if !errors.Is(err, app.ErrNoRecords) {
			return err
		}
		log.Warnf("skipping resources: %v", err)
	}

	rep := s.Analyze()
	if analyzeOpts.html != "" {
		if err := writeHTMLChart(analyzeOpts.html, rep); err != nil {
			return err
		}
		log.Infof("chart written to %s", analyzeOpts.html)
	}
	return writeAnalysis(cmd.OutOrStdout(), analyzeOpts.format, rep)
}

func writeHTMLChart(path string, rep app.AnalysisReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteHTMLChart(f, rep.Comparisons); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
