package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `logging:
  level: debug
  format: console
jobs:
  time_limit: 12
  sort_by: max_profit
resources:
  budget: 8000
exhaustive:
  warn_above: 15
  max_records: 24
metrics:
  sinks:
    - type: "nop"
    - type: "prometheus"
      conf:
        textfile: "alloc.prom"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
		{"jobs.time_limit", cfg.Jobs.TimeLimit, 12.0},
		{"jobs.sort_by", cfg.Jobs.SortBy, "max_profit"},
		{"resources.budget", cfg.Resources.Budget, 8000.0},
		{"resources.sort_by", cfg.Resources.SortBy, "best_ratio"},
		{"exhaustive.warn_above", cfg.Exhaustive.WarnAbove, 15},
		{"exhaustive.max_records", cfg.Exhaustive.MaxRecords, 24},
		{"metrics_sinks", len(cfg.Metrics.Sinks), 2},
		{"metrics_sink_type", cfg.Metrics.Sinks[1].Type, "prometheus"},
		{"metrics_sink_conf", cfg.Metrics.Sinks[1].Conf["textfile"], "alloc.prom"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadJSONWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"resources":{"budget":5000}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ALLOC_RESOURCES__BUDGET", "7500")
	t.Setenv("ALLOC_JOBS__SORT_BY", "min_duration")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Resources.Budget != 7500 {
		t.Fatalf("expected env budget 7500, got %v", cfg.Resources.Budget)
	}
	if cfg.Jobs.SortBy != "min_duration" {
		t.Fatalf("expected env sort key, got %q", cfg.Jobs.SortBy)
	}
	if cfg.Jobs.TimeLimit != DefaultTimeLimit {
		t.Fatalf("expected default time limit, got %v", cfg.Jobs.TimeLimit)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Jobs.TimeLimit != 8 || cfg.Resources.Budget != 10000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Exhaustive.WarnAbove != 20 || cfg.Exhaustive.MaxRecords != 0 {
		t.Fatalf("unexpected exhaustive defaults: %+v", cfg.Exhaustive)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected info level, got %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"bad sort":       "jobs:\n  sort_by: cheapest_first\n",
		"bad level":      "logging:\n  level: loud\n",
		"bad format":     "logging:\n  format: xml\n",
		"negative max":   "exhaustive:\n  max_records: -1\n",
		"negative limit": "jobs:\n  time_limit: -2\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yml")
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for toml")
	}
}

func TestLoggingFileDefaults(t *testing.T) {
	c := LoggingConfig{Path: "logs/alloc.log"}
	c.SetDefaults()
	if c.MaxSizeMB != DefaultLogMaxSizeMB {
		t.Fatalf("expected default size, got %d", c.MaxSizeMB)
	}
	if r := c.Rotate(); r.Path != "logs/alloc.log" || r.MaxSizeMB != DefaultLogMaxSizeMB {
		t.Fatalf("unexpected rotate options: %+v", r)
	}
	c.MaxBackups = -1
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for negative backups")
	}
}
