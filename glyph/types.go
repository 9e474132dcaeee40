// Package glyph: shapes, evaluations, doubt ceilings and sentinel errors.
package glyph

import "errors"

// Sentinel errors for glyph and nest operations.
var (
	// ErrNilGlyph indicates a nil *Glyph was passed where a glyph is required.
	ErrNilGlyph = errors.New("glyph: glyph is nil")

	// ErrNoSections indicates a glyph or section was assembled from zero runs/sections.
	ErrNoSections = errors.New("glyph: at least one section is required")

	// ErrNoRuns indicates a section was built without any run.
	ErrNoRuns = errors.New("glyph: at least one run is required")

	// ErrBadRun indicates a run with a non-positive length.
	ErrBadRun = errors.New("glyph: run length must be positive")
)

// Shape is a label from the classification vocabulary.
type Shape int

// The vocabulary. ShapeNone is the unclassified state, not a vote result.
const (
	ShapeNone Shape = iota
	ShapeDot
	ShapeSlur
	ShapeClutter
	ShapeStem
	ShapeSharp
	ShapeNatural
	ShapeFlat
	ShapeLedger
	ShapeBeam
	ShapeNoteheadBlack
)

var shapeNames = map[Shape]string{
	ShapeNone:          "NONE",
	ShapeDot:           "DOT",
	ShapeSlur:          "SLUR",
	ShapeClutter:       "CLUTTER",
	ShapeStem:          "STEM",
	ShapeSharp:         "SHARP",
	ShapeNatural:       "NATURAL",
	ShapeFlat:          "FLAT",
	ShapeLedger:        "LEDGER",
	ShapeBeam:          "BEAM",
	ShapeNoteheadBlack: "NOTEHEAD_BLACK",
}

// String reports the canonical upper-case name of the shape.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}

	return "UNKNOWN"
}

// WellKnown reports whether s belongs to the trained vocabulary.
// ShapeClutter is well-known (the classifier votes for it); callers that
// must avoid the catch-all test for it explicitly.
func (s Shape) WellKnown() bool {
	return s != ShapeNone
}

// Reclassifiable reports whether a glyph already carrying s may still be
// consumed as a compound part: dots, slurs and clutter are frequent
// artifacts of over-segmentation.
func (s Shape) Reclassifiable() bool {
	return s == ShapeDot || s == ShapeSlur || s == ShapeClutter
}

// Doubt ceilings for the successive processing phases. Doubt is a
// distance-like score, lower is better; it is not a probability.
const (
	// SymbolMaxDoubt gates the standard symbol evaluation pass.
	SymbolMaxDoubt = 1.0001

	// LeafMaxDoubt gates the acceptance of a leaf glyph.
	LeafMaxDoubt = 1.01

	// MinCompoundPartDoubt is the doubt at or above which an already
	// classified glyph becomes suitable again as a compound part.
	MinCompoundPartDoubt = 1.020

	// CleanupMaxDoubt gates the late cleanup pass.
	CleanupMaxDoubt = 1.2

	// AlgorithmDoubt is recorded when a shape is assigned by rule rather
	// than by classifier vote: better than any vote ceiling in use, worse
	// than manual certainty.
	AlgorithmDoubt = 0.5

	// ManualDoubt is recorded for shapes fixed by hand.
	ManualDoubt = 0.0
)

// Evaluation is an immutable (shape, doubt) pair produced by an Evaluator.
type Evaluation struct {
	Shape Shape
	Doubt float64
}

// Evaluator scores a candidate glyph against the shape vocabulary.
//
// Vote reports the best evaluation whose doubt is at most maxDoubt, or
// false when no vocabulary shape scores within the ceiling. An Evaluator
// is pure and stateless: deterministic for a fixed candidate and model
// snapshot, and safe for concurrent use across partitions.
type Evaluator interface {
	Vote(g *Glyph, maxDoubt float64) (Evaluation, bool)
}
