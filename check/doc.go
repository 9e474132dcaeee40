// Package check grades candidates against weighted suites of geometric
// checks. Each Check maps a raw measured value into a grade in [0, 1] by
// linear interpolation between its Low and High bounds; a value beyond
// the failing bound vetoes the candidate outright, whatever the other
// checks say. A Suite combines its checks into one weighted mean grade
// that callers compare against the suite's minimum threshold.
//
// A check with weight 0 contributes nothing to the mean but still
// vetoes: that is the idiom for pure guards (e.g. "not too thick").
//
// What:
//
//   - Check[C]: bounds, covariance, weight, failure tag, value function.
//   - Suite[C]: ordered checks, Impacts(ctx) grading, MinThreshold gate.
//   - Impacts: per-check results, overall grade, veto failure, Dump().
//
// Grading:
//
//   - covariant (higher is better): value < Low vetoes, value ≥ High
//     grades 1, between: (v-Low)/(High-Low).
//   - contravariant (lower is better): value > High vetoes, value ≤ Low
//     grades 1, between: (High-v)/(High-Low).
//
// Complexity:
//
//   - Suite.Impacts: O(k) value calls for k checks, Memory: O(k).
//
// Options:
//
//   - WithMinThreshold: acceptance gate for the suite grade
//     (default DefaultMinThreshold = 0.5).
//
// Errors:
//
//   - ErrBadBounds: Low must be strictly below High.
//   - ErrBadWeight: negative weight.
//   - ErrNilValue: a check without a value function.
//   - ErrNoChecks: grading an empty or weightless suite.
//   - ErrBadThreshold: threshold outside [0, 1].
package check
