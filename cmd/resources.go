package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

var resourcesOpts struct {
	input   string
	entries []string
	budget  float64
	sortBy  string
	format  string
}

var resourcesCmd = &cobra.Command{
	Use:     "resources",
	Short:   "Select resources within a budget and compare greedy with brute force",
	Example: "  alloc resources --resource \"R1,5000,8000\" --resource \"R2,4000,5000\" --resource \"R3,3000,7000\" --budget 8000\n  alloc resources --input resources.csv --sort-by min_cost",
	RunE:    runResources,
}

func init() {
	f := resourcesCmd.Flags()
	f.StringVarP(&resourcesOpts.input, "input", "i", "", "CSV or XLSX file with Resource Name, Cost, Benefit columns")
	f.StringArrayVar(&resourcesOpts.entries, "resource", nil, `resource as "name,cost,benefit" (repeatable)`)
	f.Float64Var(&resourcesOpts.budget, "budget", 0, "available budget (default from config)")
	f.StringVar(&resourcesOpts.sortBy, "sort-by", "", "max_benefit, min_cost or best_ratio (default from config)")
	f.StringVar(&resourcesOpts.format, "format", formatText, "output format: text, json or csv")
	rootCmd.AddCommand(resourcesCmd)
}

func runResources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, closeSession, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession()

	if err := loadResources(s, resourcesOpts.input, resourcesOpts.entries); err != nil {
		return err
	}
	budget := cfg.Resources.Budget
	if cmd.Flags().Changed("budget") {
		budget = resourcesOpts.budget
	}
	key, err := model.ParseSortKey(pick(resourcesOpts.sortBy, cfg.Resources.SortBy))
	if err != nil {
		return err
	}
	rep, err := s.SelectResources(budget, key)
	if err != nil {
		return err
	}
	return writeRun(cmd.OutOrStdout(), resourcesOpts.format, rep)
}
