package scale

import (
	"errors"
	"math"
)

// Sentinel errors for scale construction.
var (
	// ErrBadInterline indicates a non-positive interline measurement.
	ErrBadInterline = errors.New("scale: interline must be positive")
	// ErrBadLineThickness indicates a non-positive line thickness measurement.
	ErrBadLineThickness = errors.New("scale: line thickness must be positive")
)

// Fraction is a length expressed in interline units.
type Fraction float64

// LineFraction is a length expressed in mean staff-line thickness units.
type LineFraction float64

// Scale carries the measured metrics of one sheet and converts
// sheet-relative units to pixels and back. The zero value is unusable;
// construct via New.
type Scale struct {
	interline     int
	lineThickness int
}

// New validates and builds a Scale.
func New(interline, lineThickness int) (Scale, error) {
	if interline <= 0 {
		return Scale{}, ErrBadInterline
	}
	if lineThickness <= 0 {
		return Scale{}, ErrBadLineThickness
	}

	return Scale{interline: interline, lineThickness: lineThickness}, nil
}

// Interline reports the interline value in pixels.
func (s Scale) Interline() int {
	return s.interline
}

// LineThickness reports the mean staff-line thickness in pixels.
func (s Scale) LineThickness() int {
	return s.lineThickness
}

// ToPixels converts an interline fraction to pixels, rounded to the
// nearest integer (ties to even).
func (s Scale) ToPixels(f Fraction) int {
	return int(math.RoundToEven(float64(f) * float64(s.interline)))
}

// ToPixelsLine converts a line-thickness fraction to pixels, rounded to
// the nearest integer (ties to even).
func (s Scale) ToPixelsLine(lf LineFraction) int {
	return int(math.RoundToEven(float64(lf) * float64(s.lineThickness)))
}

// FracOf reports a pixel length as an interline fraction.
func (s Scale) FracOf(px float64) float64 {
	return px / float64(s.interline)
}

// LineFracOf reports a pixel length as a line-thickness fraction.
func (s Scale) LineFracOf(px float64) float64 {
	return px / float64(s.lineThickness)
}
