package selector

import "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"

// Exhaustive returns the best objective over every feasible non-empty subset
// of items. Selected stays empty; Witness holds the first subset reaching the
// best objective. Only a strictly positive objective replaces the empty
// selection.
func Exhaustive[T model.Record](items []T, capacity float64) (model.RunResult[T], error) {
	var res model.RunResult[T]
	if err := model.ValidateCapacity(capacity); err != nil {
		return res, err
	}
	n := len(items)
	if n == 0 || capacity == 0 {
		return res, nil
	}

	var best float64
	var witness []int
	for size := 1; size <= n; size++ {
		combinations(n, size, func(idx []int) {
			objective, ok := evaluate(items, idx, capacity)
			if ok && objective > best {
				best = objective
				witness = append(witness[:0], idx...)
			}
		})
	}

	res.TotalObjective = best
	for _, i := range witness {
		res.Witness = append(res.Witness, items[i])
	}
	return res, nil
}

// evaluate checks one subset and returns its objective when feasible.
func evaluate[T model.Record](items []T, idx []int, capacity float64) (float64, bool) {
	var cumulative, objective float64
	for _, i := range idx {
		cumulative += items[i].Primary()
		if !model.Fits(items[i], cumulative) {
			return 0, false
		}
		objective += items[i].Objective()
	}
	if cumulative > capacity {
		return 0, false
	}
	return objective, true
}

// combinations calls fn with every size-r subset of [0,n) as ascending index
// slices, in lexicographic order. fn must not retain idx.
func combinations(n, r int, fn func(idx []int)) {
	if r <= 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
