package model

import "fmt"

// Domain identifies one of the two problems compared by the tool.
type Domain int

const (
	DomainJobs Domain = iota
	DomainResources
)

// Domains lists every domain in reporting order.
var Domains = []Domain{DomainJobs, DomainResources}

// String returns the identifier used in metrics labels and config keys.
func (d Domain) String() string {
	switch d {
	case DomainJobs:
		return "jobs"
	case DomainResources:
		return "resources"
	default:
		return "unknown"
	}
}

// Title returns a human readable heading for the domain.
func (d Domain) Title() string {
	switch d {
	case DomainJobs:
		return "Job Scheduling"
	case DomainResources:
		return "Resource Selection"
	default:
		return "Unknown"
	}
}

// PrimaryName names the capacity-constrained quantity of the domain.
func (d Domain) PrimaryName() string {
	if d == DomainJobs {
		return "duration"
	}
	return "cost"
}

// ObjectiveName names the maximised quantity of the domain.
func (d Domain) ObjectiveName() string {
	if d == DomainJobs {
		return "profit"
	}
	return "benefit"
}

// CapacityName names the per-run constraint of the domain.
func (d Domain) CapacityName() string {
	if d == DomainJobs {
		return "time limit"
	}
	return "budget"
}

// ParseDomain converts a textual domain name.
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "jobs", "job":
		return DomainJobs, nil
	case "resources", "resource":
		return DomainResources, nil
	default:
		return 0, fmt.Errorf("unknown domain %q", s)
	}
}
