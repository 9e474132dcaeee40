package check

import (
	"fmt"
	"strings"
)

// SuiteOption customizes a Suite at construction time.
type SuiteOption func(*suiteConfig)

type suiteConfig struct {
	minThreshold float64
}

// WithMinThreshold overrides the acceptance gate for the suite grade.
func WithMinThreshold(t float64) SuiteOption {
	return func(cfg *suiteConfig) {
		cfg.minThreshold = t
	}
}

// Suite is an ordered collection of weighted checks over candidates of
// type C. Build with NewSuite, populate with Add, grade with Impacts.
// A Suite is safe for concurrent Impacts calls once populated.
type Suite[C any] struct {
	name         string
	minThreshold float64
	checks       []Check[C]
	totalWeight  float64
}

// NewSuite creates an empty named suite.
// Returns ErrBadThreshold when an option sets a gate outside [0, 1].
func NewSuite[C any](name string, opts ...SuiteOption) (*Suite[C], error) {
	cfg := suiteConfig{minThreshold: DefaultMinThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minThreshold < 0 || cfg.minThreshold > 1 {
		return nil, ErrBadThreshold
	}

	return &Suite[C]{name: name, minThreshold: cfg.minThreshold}, nil
}

// Add appends a check to the suite after validating it.
func (s *Suite[C]) Add(c Check[C]) error {
	if err := c.validate(); err != nil {
		return err
	}
	s.checks = append(s.checks, c)
	s.totalWeight += c.Weight

	return nil
}

// Name reports the suite name used in impact dumps.
func (s *Suite[C]) Name() string {
	return s.name
}

// MinThreshold reports the acceptance gate for the suite grade.
func (s *Suite[C]) MinThreshold() float64 {
	return s.minThreshold
}

// Len reports the number of checks in the suite.
func (s *Suite[C]) Len() int {
	return len(s.checks)
}

// Impacts grades ctx against every check and combines the results.
// Returns ErrNoChecks when the suite carries no positive weight at all.
//
// All checks run even after a veto so the dump stays complete for
// diagnosis; a vetoed candidate always reports grade 0.
func (s *Suite[C]) Impacts(ctx C) (Impacts, error) {
	if len(s.checks) == 0 || s.totalWeight <= 0 {
		return Impacts{}, ErrNoChecks
	}

	im := Impacts{
		suite:   s.name,
		results: make([]Result, 0, len(s.checks)),
	}
	var weighted float64
	for _, c := range s.checks {
		value := c.Value(ctx)
		grade, failed := c.grade(value)
		im.results = append(im.results, Result{
			Name:   c.Name,
			Value:  value,
			Grade:  grade,
			Failed: failed,
		})
		if failed && im.failure == "" {
			im.failure = c.Failure
		}
		weighted += c.Weight * grade
	}
	if im.failure == "" {
		im.grade = weighted / s.totalWeight
	}

	return im, nil
}

// Impacts is the graded outcome of one suite run.
type Impacts struct {
	suite   string
	results []Result
	grade   float64
	failure Failure
}

// Grade reports the weighted mean grade, or 0 after a veto.
func (im Impacts) Grade() float64 {
	return im.grade
}

// Failure reports the veto tag and whether any check vetoed.
func (im Impacts) Failure() (Failure, bool) {
	return im.failure, im.failure != ""
}

// Results reports the per-check outcomes in suite order.
func (im Impacts) Results() []Result {
	return im.results
}

// Dump renders the impact vector for logs, one check per segment.
func (im Impacts) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %.2f", im.suite, im.grade)
	for _, r := range im.results {
		fmt.Fprintf(&b, " %s:%.2f(%.2f)", r.Name, r.Value, r.Grade)
		if r.Failed {
			b.WriteString("!")
		}
	}

	return b.String()
}
