package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/app"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/config"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/logger"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/pkg/ingest"
)

var (
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "alloc",
	Short:         "Compare greedy and exhaustive selection for job scheduling and resource selection",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration and sets up logging. An empty path
// uses defaults and ALLOC_ environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	opts := cfg.Logging.Options()
	if cfg.Logging.Path != "" {
		w, err := logger.NewRotatingWriter(cfg.Logging.Rotate())
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		opts.Out = w
	}
	logger.Configure(opts)
	return cfg, nil
}

func newSession(cfg *config.Config) (*app.Session, func(), error) {
	s, err := app.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := s.Close(); err != nil {
			logger.New("main").Errorf("session close: %v", err)
		}
	}
	return s, closer, nil
}

func importFile(path string, fn func(io.Reader, ingest.Format) (int, error)) (int, error) {
	format, err := ingest.FormatFromPath(path)
	if err != nil {
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	n, err := fn(f, format)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// loadJobs adds the jobs of an optional file then the inline entries.
func loadJobs(s *app.Session, path string, entries []string) error {
	if path != "" {
		if _, err := importFile(path, s.ImportJobs); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if _, err := s.AddJob(ingest.SplitFields(e)); err != nil {
			return err
		}
	}
	return nil
}

func loadResources(s *app.Session, path string, entries []string) error {
	if path != "" {
		if _, err := importFile(path, s.ImportResources); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if _, err := s.AddResource(ingest.SplitFields(e)); err != nil {
			return err
		}
	}
	return nil
}
