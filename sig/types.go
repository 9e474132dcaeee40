// Package sig: interpretation graph types, reduction modes and
// sentinel errors.
package sig

import (
	"errors"
	"fmt"
	"image"

	"github.com/katalvlaran/stave/glyph"
)

// Sentinel errors for graph operations.
var (
	// ErrNilGlyph indicates an interpretation was requested for a nil glyph.
	ErrNilGlyph = errors.New("sig: glyph is nil")

	// ErrInterNotFound indicates an operation referenced an unknown
	// interpretation handle.
	ErrInterNotFound = errors.New("sig: interpretation not found")

	// ErrSelfExclusion indicates an exclusion between an interpretation
	// and itself.
	ErrSelfExclusion = errors.New("sig: an interpretation cannot exclude itself")
)

// GoodGrade is the grade at or above which an interpretation counts as
// good for query purposes.
const GoodGrade = 0.5

// InterID is an opaque handle to an interpretation within one Graph.
// Handles are never reused within a graph's lifetime.
type InterID int64

// Inter is a committed (glyph, shape, grade) interpretation node.
// Details optionally carries the check-suite impact dump that produced
// the grade, for logs and inspection.
type Inter struct {
	ID      InterID
	Glyph   *glyph.Glyph
	Shape   glyph.Shape
	Grade   float64
	Details string
}

// Bounds reports the bounding box of the interpreted glyph.
func (in *Inter) Bounds() image.Rectangle {
	return in.Glyph.Bounds()
}

// String renders the node for log fields.
func (in *Inter) String() string {
	return fmt.Sprintf("inter#%d %s g#%d %.2f", in.ID, in.Shape, in.Glyph.ID(), in.Grade)
}

// Cause tags why two interpretations exclude each other.
type Cause int

// CauseOverlap marks exclusions born from spatial (abscissa) overlap.
const CauseOverlap Cause = iota

// String reports the cause tag name.
func (c Cause) String() string {
	if c == CauseOverlap {
		return "OVERLAP"
	}

	return "UNKNOWN"
}

// Exclusion is an undirected, cause-tagged edge between two
// interpretations: at most one endpoint survives reduction.
// A and B are normalized so that A < B.
type Exclusion struct {
	A, B  InterID
	Cause Cause
}

// Mode selects the reduction policy for exclusion edges.
type Mode int

const (
	// ModeStrict deletes the lower-graded endpoint of every edge; on an
	// exact grade tie the younger endpoint (larger InterID) is deleted,
	// which keeps reduction deterministic and idempotent.
	ModeStrict Mode = iota

	// ModeRelaxed is identical except exact grade ties survive: both
	// endpoints are kept for callers that prefer retaining ambiguity.
	ModeRelaxed
)
