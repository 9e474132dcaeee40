// Package check: shared types and sentinel errors.
package check

import "errors"

// Sentinel errors for suite construction and grading.
var (
	// ErrBadBounds indicates Low is not strictly below High.
	ErrBadBounds = errors.New("check: low bound must be strictly below high bound")
	// ErrBadWeight indicates a negative check weight.
	ErrBadWeight = errors.New("check: weight must not be negative")
	// ErrNilValue indicates a check without a value function.
	ErrNilValue = errors.New("check: value function must not be nil")
	// ErrNoChecks indicates grading was requested on a suite with no
	// weighted checks.
	ErrNoChecks = errors.New("check: suite needs at least one check with positive weight")
	// ErrBadThreshold indicates a minimum threshold outside [0, 1].
	ErrBadThreshold = errors.New("check: minimum threshold must lie within [0, 1]")
)

// DefaultMinThreshold is the suite acceptance gate used when no
// WithMinThreshold option is given.
const DefaultMinThreshold = 0.5

// Failure names the reason a candidate was vetoed, e.g. "Hori-TooShort".
// The empty Failure means no veto.
type Failure string

// Result is the outcome of one check on one candidate: the raw measured
// value, its grade in [0, 1], and whether the value fell in the veto zone.
type Result struct {
	Name   string
	Value  float64
	Grade  float64
	Failed bool
}
