// Package efficiency relates greedy and exhaustive results.
//
// SharedMetrics carries the four objective totals between the job and
// resource runs. It is a plain value owned by the caller: each run returns an
// updated copy instead of mutating process-wide state. Compare turns the
// totals of one domain into an efficiency ratio with the static complexity
// annotations, and Lifecycle tracks where each domain stands between loading
// records, running the selectors and comparing results.
package efficiency
