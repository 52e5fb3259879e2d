package efficiency

import "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"

// Totals holds the objectives produced by one run of a domain.
type Totals struct {
	Greedy  float64 `json:"greedy"`
	Optimal float64 `json:"optimal"`
}

// SharedMetrics holds the latest totals for both domains. The zero value is
// the state at session start.
type SharedMetrics struct {
	Jobs      Totals `json:"jobs"`
	Resources Totals `json:"resources"`
}

// With returns a copy of m where the slots of d are overwritten by t.
func (m SharedMetrics) With(d model.Domain, t Totals) SharedMetrics {
	switch d {
	case model.DomainJobs:
		m.Jobs = t
	case model.DomainResources:
		m.Resources = t
	}
	return m
}

// Get returns the totals stored for d.
func (m SharedMetrics) Get(d model.Domain) Totals {
	if d == model.DomainJobs {
		return m.Jobs
	}
	if d == model.DomainResources {
		return m.Resources
	}
	return Totals{}
}
