package metrics

import "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
