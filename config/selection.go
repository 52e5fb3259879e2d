package config

import (
	"fmt"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

const (
	DefaultTimeLimit = 8
	DefaultBudget    = 10000
	DefaultWarnAbove = 20
)

// JobsConfig holds defaults for job scheduling runs.
type JobsConfig struct {
	TimeLimit float64 `json:"time_limit"`
	SortBy    string  `json:"sort_by"`
}

func (c *JobsConfig) SetDefaults() {
	if c.TimeLimit == 0 {
		c.TimeLimit = DefaultTimeLimit
	}
	if c.SortBy == "" {
		c.SortBy = model.SortBestRatio.String()
	}
}

func (c JobsConfig) Validate() error {
	if c.TimeLimit < 0 {
		return fmt.Errorf("time_limit must not be negative")
	}
	_, err := model.ParseSortKey(c.SortBy)
	return err
}

// ResourcesConfig holds defaults for resource selection runs.
type ResourcesConfig struct {
	Budget float64 `json:"budget"`
	SortBy string  `json:"sort_by"`
}

func (c *ResourcesConfig) SetDefaults() {
	if c.Budget == 0 {
		c.Budget = DefaultBudget
	}
	if c.SortBy == "" {
		c.SortBy = model.SortBestRatio.String()
	}
}

func (c ResourcesConfig) Validate() error {
	if c.Budget < 0 {
		return fmt.Errorf("budget must not be negative")
	}
	_, err := model.ParseSortKey(c.SortBy)
	return err
}

// ExhaustiveConfig guards the exponential search.
type ExhaustiveConfig struct {
	// WarnAbove logs a warning when a working set is larger.
	WarnAbove int `json:"warn_above"`
	// MaxRecords refuses larger working sets; 0 means unlimited.
	MaxRecords int `json:"max_records"`
}

func (c *ExhaustiveConfig) SetDefaults() {
	if c.WarnAbove == 0 {
		c.WarnAbove = DefaultWarnAbove
	}
}

func (c ExhaustiveConfig) Validate() error {
	if c.WarnAbove < 0 || c.MaxRecords < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	return nil
}
