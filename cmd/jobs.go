package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

var jobsOpts struct {
	input     string
	entries   []string
	timeLimit float64
	sortBy    string
	format    string
}

var jobsCmd = &cobra.Command{
	Use:     "jobs",
	Short:   "Schedule jobs within a time limit and compare greedy with brute force",
	Example: "  alloc jobs --job \"J1,2,4,50\" --job \"J2,1,2,10\" --time-limit 3 --sort-by max_profit\n  alloc jobs --input jobs.xlsx --format json",
	RunE:    runJobs,
}

func init() {
	f := jobsCmd.Flags()
	f.StringVarP(&jobsOpts.input, "input", "i", "", "CSV or XLSX file with Job Name, Duration, Deadline, Profit columns")
	f.StringArrayVar(&jobsOpts.entries, "job", nil, `job as "name,duration,deadline,profit" (repeatable)`)
	f.Float64Var(&jobsOpts.timeLimit, "time-limit", 0, "available hours (default from config)")
	f.StringVar(&jobsOpts.sortBy, "sort-by", "", "max_profit, min_duration or best_ratio (default from config)")
	f.StringVar(&jobsOpts.format, "format", formatText, "output format: text, json or csv")
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, closeSession, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession()

	if err := loadJobs(s, jobsOpts.input, jobsOpts.entries); err != nil {
		return err
	}
	limit := cfg.Jobs.TimeLimit
	if cmd.Flags().Changed("time-limit") {
		limit = jobsOpts.timeLimit
	}
	key, err := model.ParseSortKey(pick(jobsOpts.sortBy, cfg.Jobs.SortBy))
	if err != nil {
		return err
	}
	rep, err := s.ScheduleJobs(limit, key)
	if err != nil {
		return err
	}
	return writeRun(cmd.OutOrStdout(), jobsOpts.format, rep)
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
