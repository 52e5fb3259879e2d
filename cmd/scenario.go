package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/qa/scenarios"
)

var errScenarioFailed = errors.New("scenario expectations not met")

var scenarioCmd = &cobra.Command{
	Use:     "scenario FILE...",
	Short:   "Run YAML scenarios and check greedy and optimal outcomes",
	Example: "  alloc scenario qa/scenarios/*.yaml",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runScenarios,
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		sc, err := scenarios.Load(path)
		if err != nil {
			return err
		}
		res, err := scenarios.Run(sc, sink)
		if err != nil {
			return err
		}
		if res.Passed() {
			fmt.Fprintf(out, "%s %s (ratio %.2f%%)\n", color.GreenString("PASS"), res.Scenario, res.Report.Ratio)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %s\n", color.RedString("FAIL"), res.Scenario)
		for _, f := range res.Failures {
			fmt.Fprintf(out, "    %s\n", f)
		}
	}

	if f, ok := sink.(coremetrics.Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("metrics flush: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errScenarioFailed, failed, len(args))
	}
	return nil
}
