// Package ledger: options, failure tags and sentinel errors for the
// virtual-line ledger scan.
package ledger

import (
	"errors"

	"github.com/katalvlaran/stave/check"
	"github.com/katalvlaran/stave/scale"
)

// Sentinel errors for builder construction.
var (
	// ErrNilGraph indicates construction without an interpretation graph.
	ErrNilGraph = errors.New("ledger: interpretation graph is nil")

	// ErrNilSource indicates construction without a pixel source; the
	// convexity check needs one to probe around stick ends.
	ErrNilSource = errors.New("ledger: pixel source is nil")

	// ErrNoStaves indicates construction without any staff to scan from.
	ErrNoStaves = errors.New("ledger: at least one staff is required")

	// ErrBadOptions indicates an option outside its valid range.
	ErrBadOptions = errors.New("ledger: option out of range")
)

// Failure tags reported by the ledger check suites.
const (
	// TooShort vetoes sticks below the minimum ledger length.
	TooShort check.Failure = "Hori-TooShort"

	// TooThin vetoes sticks thinner than a plausible ledger.
	TooThin check.Failure = "Hori-TooThin"

	// TooThick vetoes sticks thicker than a plausible ledger.
	TooThick check.Failure = "Hori-TooThick"

	// TooConcave vetoes sticks whose ends blend into surrounding ink.
	TooConcave check.Failure = "Hori-TooConcave"

	// TooBended vetoes sticks too far from their own fitted line.
	TooBended check.Failure = "Hori-TooBended"

	// TooShifted vetoes sticks whose end ordinates stray from the
	// target virtual line.
	TooShifted check.Failure = "Hori-TooShifted"
)

// convexityHigh is the best possible convexity value: both stick ends
// pointing out of the surrounding ink.
const convexityHigh = 2.0

// Options bundles the tunable constants of ledger scanning. Fractions
// are interline-relative, LineFractions relative to mean staff-line
// thickness.
type Options struct {
	// MarginY is the vertical margin around a virtual line, and also
	// the end-ordinate tolerance of the pitch checks.
	MarginY scale.Fraction `yaml:"margin_y"`

	// MinLengthLow / MinLengthHigh bound the minimum-length ramp;
	// MinLengthLow is also the raw candidate width floor.
	MinLengthLow  scale.Fraction `yaml:"min_length_low"`
	MinLengthHigh scale.Fraction `yaml:"min_length_high"`

	// MinThicknessHigh tops the minimum-thickness ramp.
	MinThicknessHigh scale.Fraction `yaml:"min_thickness_high"`

	// MaxThicknessLow / MaxThicknessHigh bound the pure-veto maximum
	// thickness guard.
	MaxThicknessLow  scale.LineFraction `yaml:"max_thickness_low"`
	MaxThicknessHigh scale.LineFraction `yaml:"max_thickness_high"`

	// MaxDistanceHigh caps the mean distance to the fitted line.
	MaxDistanceHigh scale.Fraction `yaml:"max_distance_high"`

	// MaxShortLength separates short from long candidates for suite
	// selection.
	MaxShortLength scale.Fraction `yaml:"max_short_length"`

	// ConvexityLow is the failing bound of the convexity ramp.
	ConvexityLow float64 `yaml:"convexity_low"`

	// MinThreshold gates the suite grade for acceptance.
	MinThreshold float64 `yaml:"min_threshold"`
}

// DefaultOptions reports the production constants.
func DefaultOptions() Options {
	return Options{
		MarginY:          0.35,
		MinLengthLow:     1.0,
		MinLengthHigh:    1.5,
		MinThicknessHigh: 0.25,
		MaxThicknessLow:  1.0,
		MaxThicknessHigh: 3.0,
		MaxDistanceHigh:  0.3,
		MaxShortLength:   2.0,
		ConvexityLow:     -0.5,
		MinThreshold:     check.DefaultMinThreshold,
	}
}

// Validate reports ErrBadOptions unless ramps are ordered and every
// length is positive.
func (o Options) Validate() error {
	switch {
	case o.MarginY <= 0,
		o.MinLengthLow <= 0,
		o.MinLengthHigh <= o.MinLengthLow,
		o.MinThicknessHigh <= 0,
		o.MaxThicknessLow <= 0,
		o.MaxThicknessHigh <= o.MaxThicknessLow,
		o.MaxDistanceHigh <= 0,
		o.MaxShortLength <= 0,
		o.ConvexityLow >= convexityHigh,
		o.MinThreshold < 0 || o.MinThreshold > 1:
		return ErrBadOptions
	}

	return nil
}

// IndexTarget pairs the best virtual line index for a candidate with
// the target ordinate on that line.
type IndexTarget struct {
	Index  int
	Target float64
}
