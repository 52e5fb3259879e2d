// Package selector implements the two selection strategies compared by the
// tool and the relaxation bound reported next to them.
//
// Greedy sorts the working set once by a model.SortKey and admits records in
// that order while they fit the capacity and their own horizon (deadline for
// jobs). It never backtracks and runs in O(n log n).
//
// Exhaustive enumerates every non-empty subset, size by size in lexicographic
// index order, and keeps the best objective among feasible subsets. A subset
// is feasible when the cumulative primary metric after each element stays
// within that element's horizon and the total stays within capacity. It costs
// O(n·2ⁿ) and is the ground truth the greedy result is measured against; past
// roughly 20-25 records it becomes impractical.
//
// RelaxationBound solves the linear relaxation of the capacity constraint and
// returns an upper bound on the exhaustive optimum.
//
// All functions are pure: they never mutate their input and hold no state.
package selector
