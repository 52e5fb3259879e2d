package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/logger"
)

// DefaultLogMaxSizeMB applies when a log file is set without a size limit.
const DefaultLogMaxSizeMB = 10

// LoggingConfig selects the log level, encoding and an optional rotated file.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Format is "json" or "console". Empty picks console when APP_ENV=dev.
	Format string `json:"format"`
	// Path sends logs to a file instead of stderr.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation when the file exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Path != "" && c.MaxSizeMB == 0 {
		c.MaxSizeMB = DefaultLogMaxSizeMB
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err != nil {
		return err
	}
	switch c.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown format %s", c.Format)
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("rotation limits must not be negative")
	}
	return nil
}

// Options converts the section to logger options. The output is left unset.
func (c LoggingConfig) Options() logger.Options {
	return logger.Options{Level: c.Level, Format: c.Format}
}

// Rotate returns the file rotation settings.
func (c LoggingConfig) Rotate() logger.RotateOptions {
	return logger.RotateOptions{
		Path:       c.Path,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
	}
}
