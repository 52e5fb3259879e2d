package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
)

// EnvPrefix marks environment overrides; "__" separates nested keys, e.g.
// ALLOC_JOBS__TIME_LIMIT=10.
const EnvPrefix = "ALLOC_"

type Config struct {
	Logging    LoggingConfig    `json:"logging"`
	Jobs       JobsConfig       `json:"jobs"`
	Resources  ResourcesConfig  `json:"resources"`
	Exhaustive ExhaustiveConfig `json:"exhaustive"`
	Metrics    metrics.Config   `json:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// Load reads a YAML or JSON file and applies environment overrides. An empty
// path loads defaults plus the environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	prefix := strings.ToLower(EnvPrefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), prefix)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills every section.
func (c *Config) SetDefaults() {
	c.Logging.SetDefaults()
	c.Jobs.SetDefaults()
	c.Resources.SetDefaults()
	c.Exhaustive.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Jobs.Validate(); err != nil {
		return fmt.Errorf("jobs: %w", err)
	}
	if err := c.Resources.Validate(); err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	if err := c.Exhaustive.Validate(); err != nil {
		return fmt.Errorf("exhaustive: %w", err)
	}
	return nil
}
