package model

import (
	"fmt"
	"strings"
)

// SortKey selects the order in which the greedy selector considers records.
type SortKey int

const (
	// SortMaxObjective ranks records by objective, highest first.
	SortMaxObjective SortKey = iota
	// SortMinPrimary ranks records by primary metric, lowest first.
	SortMinPrimary
	// SortBestRatio ranks records by objective per primary unit, highest first.
	SortBestRatio
)

// String returns the canonical config value of the key.
func (k SortKey) String() string {
	switch k {
	case SortMaxObjective:
		return "max_objective"
	case SortMinPrimary:
		return "min_primary"
	case SortBestRatio:
		return "best_ratio"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the known keys.
func (k SortKey) Valid() bool {
	return k >= SortMaxObjective && k <= SortBestRatio
}

// Label returns the domain specific name shown to users, e.g. "Max Profit".
func (k SortKey) Label(d Domain) string {
	switch k {
	case SortMaxObjective:
		if d == DomainJobs {
			return "Max Profit"
		}
		return "Max Benefit"
	case SortMinPrimary:
		if d == DomainJobs {
			return "Min Duration"
		}
		return "Min Cost"
	case SortBestRatio:
		return "Best Ratio"
	default:
		return "Unknown"
	}
}

// Strategy explains the ordering in a sentence for breakdown reports.
func (k SortKey) Strategy(d Domain) string {
	switch {
	case k == SortMaxObjective && d == DomainJobs:
		return "Jobs sorted by highest profit first (maximize immediate profit)"
	case k == SortMinPrimary && d == DomainJobs:
		return "Jobs sorted by shortest duration first (fit more jobs in time limit)"
	case k == SortBestRatio && d == DomainJobs:
		return "Jobs sorted by profit/duration ratio first (best value per hour)"
	case k == SortMaxObjective:
		return "Resources sorted by highest benefit first (maximize immediate benefit)"
	case k == SortMinPrimary:
		return "Resources sorted by lowest cost first (fit more resources in budget)"
	case k == SortBestRatio:
		return "Resources sorted by benefit/cost ratio first (best value per unit of cost)"
	default:
		return "unknown strategy"
	}
}

// ParseSortKey accepts canonical names, domain specific aliases and the
// labels returned by Label.
func ParseSortKey(s string) (SortKey, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	switch norm {
	case "max_objective", "max_profit", "max_benefit", "objective", "profit", "benefit":
		return SortMaxObjective, nil
	case "min_primary", "min_duration", "min_cost", "duration", "cost":
		return SortMinPrimary, nil
	case "best_ratio", "ratio", "":
		return SortBestRatio, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}
