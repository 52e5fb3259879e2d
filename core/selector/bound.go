package selector

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

type relaxation struct {
	objectives []float64
	weights    []float64
	limit      float64
}

// buildRelaxation keeps the records that can appear in some feasible subset
// and tightens the capacity to the largest horizon among them.
func buildRelaxation[T model.Record](items []T, capacity float64) relaxation {
	var r relaxation
	horizon := math.Inf(-1)
	for _, it := range items {
		p := it.Primary()
		if it.Objective() <= 0 || p > capacity || !model.Fits(it, p) {
			continue
		}
		r.objectives = append(r.objectives, it.Objective())
		r.weights = append(r.weights, p)
		horizon = math.Max(horizon, it.Horizon())
	}
	r.limit = math.Min(capacity, horizon)
	return r
}

// solveRelaxation maximises Σ objective·x subject to Σ weight·x <= limit and
// 0 <= x <= 1 with the simplex method.
func solveRelaxation(objectives, weights []float64, limit float64) (float64, error) {
	n := len(objectives)
	c := make([]float64, n)
	g := mat.NewDense(2*n+1, n, nil)
	h := make([]float64, 2*n+1)
	for i := range objectives {
		c[i] = -objectives[i]
		g.Set(i, i, 1)
		h[i] = 1
		g.Set(n+i, i, -1)
		g.Set(2*n, i, weights[i])
	}
	h[2*n] = limit

	cStd, aStd, bStd := lp.Convert(c, g, h, nil, nil)
	opt, _, err := lp.Simplex(cStd, aStd, bStd, 1e-7, nil)
	if err != nil {
		return 0, err
	}
	return -opt, nil
}

// relaxSolve points to the solver used by RelaxationBound. Tests override it
// to exercise the fallback.
var relaxSolve = solveRelaxation

// fractionalBound solves the same relaxation by filling capacity in ratio
// order and taking a fraction of the first record that does not fit.
func fractionalBound(objectives, weights []float64, limit float64) float64 {
	order := make([]int, len(objectives))
	for i := range order {
		order[i] = i
	}
	ratio := func(i int) float64 {
		if weights[i] <= 0 {
			return math.Inf(1)
		}
		return objectives[i] / weights[i]
	}
	sort.SliceStable(order, func(a, b int) bool { return ratio(order[a]) > ratio(order[b]) })

	var bound float64
	remaining := limit
	for _, i := range order {
		if weights[i] <= remaining {
			bound += objectives[i]
			remaining -= weights[i]
			continue
		}
		if remaining > 0 {
			bound += objectives[i] * remaining / weights[i]
		}
		break
	}
	return bound
}

// RelaxationBound returns an upper bound on the exhaustive optimum by allowing
// fractional selection. When the LP solver fails the closed form fractional
// solution is returned instead.
func RelaxationBound[T model.Record](items []T, capacity float64) (float64, error) {
	if err := model.ValidateCapacity(capacity); err != nil {
		return 0, err
	}
	r := buildRelaxation(items, capacity)
	if len(r.objectives) == 0 || r.limit <= 0 {
		return 0, nil
	}
	bound, err := relaxSolve(r.objectives, r.weights, r.limit)
	if err != nil || math.IsNaN(bound) {
		return fractionalBound(r.objectives, r.weights, r.limit), nil
	}
	return bound, nil
}

// ErrBound wraps solver failures surfaced by StrictRelaxationBound.
var ErrBound = errors.New("relaxation bound failed")

// StrictRelaxationBound behaves like RelaxationBound but reports solver
// failures instead of falling back.
func StrictRelaxationBound[T model.Record](items []T, capacity float64) (float64, error) {
	if err := model.ValidateCapacity(capacity); err != nil {
		return 0, err
	}
	r := buildRelaxation(items, capacity)
	if len(r.objectives) == 0 || r.limit <= 0 {
		return 0, nil
	}
	bound, err := relaxSolve(r.objectives, r.weights, r.limit)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBound, err)
	}
	return bound, nil
}
