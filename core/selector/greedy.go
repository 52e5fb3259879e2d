package selector

import (
	"fmt"
	"sort"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

// Order returns a copy of items sorted by key. Ties keep insertion order.
func Order[T model.Record](items []T, key model.SortKey) ([]T, error) {
	sorted := make([]T, len(items))
	copy(sorted, items)
	var less func(a, b T) bool
	switch key {
	case model.SortMaxObjective:
		less = func(a, b T) bool { return a.Objective() > b.Objective() }
	case model.SortMinPrimary:
		less = func(a, b T) bool { return a.Primary() < b.Primary() }
	case model.SortBestRatio:
		less = func(a, b T) bool { return model.Ratio(a) > model.Ratio(b) }
	default:
		return nil, fmt.Errorf("%w: %d", model.ErrUnknownSortKey, int(key))
	}
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted, nil
}

// Greedy admits records in key order while the running primary metric stays
// within capacity and within the record's horizon. Skipped records are never
// reconsidered.
func Greedy[T model.Record](items []T, capacity float64, key model.SortKey) (model.RunResult[T], error) {
	var res model.RunResult[T]
	if err := model.ValidateCapacity(capacity); err != nil {
		return res, err
	}
	sorted, err := Order(items, key)
	if err != nil {
		return res, err
	}
	if capacity == 0 {
		return res, nil
	}

	var running float64
	for _, it := range sorted {
		next := running + it.Primary()
		if next <= capacity && model.Fits(it, next) {
			res.Selected = append(res.Selected, it)
			res.TotalObjective += it.Objective()
			running = next
		}
	}
	res.TotalPrimary = running
	return res, nil
}
