package compound

import (
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/scale"
)

// Adapter is the pluggable policy of one compound-building use case:
// how far around the seed to look, which glyphs may participate, and
// what makes the merged result acceptable.
type Adapter interface {
	// BoxDx reports the horizontal margin added on both sides of the
	// seed's box when gathering neighbors.
	BoxDx() int

	// BoxDy reports the vertical margin added on top and bottom.
	BoxDy() int

	// Suitable reports whether g may participate in a compound.
	// Location is handled separately by the builder.
	Suitable(g *glyph.Glyph) bool

	// Valid reports whether the freshly merged compound is acceptable.
	// A successful internal vote is written onto the compound as a side
	// effect (shape and doubt), even when validity ultimately fails.
	Valid(compound *glyph.Glyph) bool

	// Vote reports the evaluation produced by the last Valid call.
	Vote() (glyph.Evaluation, bool)
}

// BasicAdapter is the partition-wide compound policy: it merges weak or
// unclassified glyphs and accepts the result only when the classifier
// scores it better than the seed alone. Reusable across seeds via
// SetSeed.
type BasicAdapter struct {
	eval     glyph.Evaluator
	sc       scale.Scale
	opts     Options
	maxDoubt float64

	seed  *glyph.Glyph
	vote  glyph.Evaluation
	voted bool
}

// NewBasicAdapter builds the default policy with the given vote ceiling.
func NewBasicAdapter(eval glyph.Evaluator, sc scale.Scale, opts Options, maxDoubt float64) *BasicAdapter {
	return &BasicAdapter{eval: eval, sc: sc, opts: opts, maxDoubt: maxDoubt}
}

// SetSeed installs the seed the next Valid call compares against.
func (a *BasicAdapter) SetSeed(seed *glyph.Glyph) { a.seed = seed }

// BoxDx reports the horizontal neighbor-search margin in pixels.
func (a *BasicAdapter) BoxDx() int { return a.sc.ToPixels(a.opts.BoxWiden) }

// BoxDy reports the vertical neighbor-search margin in pixels.
func (a *BasicAdapter) BoxDy() int { return a.sc.ToPixels(a.opts.BoxWiden) }

// Suitable reports whether g may be (re)consumed: active, and either
// still unclassified, or automatically classified as a reclassifiable
// artifact or with doubt at/above the minimum-part threshold.
func (a *BasicAdapter) Suitable(g *glyph.Glyph) bool {
	if !g.IsActive() {
		return false
	}
	if !g.IsKnown() {
		return true
	}

	return !g.IsManual() &&
		(g.Shape().Reclassifiable() || g.Doubt() >= a.opts.MinPartDoubt)
}

// Valid votes on the compound and writes a successful vote onto it.
// Acceptance requires a well-known, non-clutter shape and, when the
// seed already carried a shape, a doubt strictly better than the
// seed's: equal confidence must not thrash between alternatives.
func (a *BasicAdapter) Valid(compound *glyph.Glyph) bool {
	a.vote, a.voted = a.eval.Vote(compound, a.maxDoubt)
	if a.voted {
		compound.SetShape(a.vote.Shape, a.vote.Doubt)
	}

	return a.voted &&
		a.vote.Shape.WellKnown() &&
		a.vote.Shape != glyph.ShapeClutter &&
		(!a.seed.IsKnown() || a.vote.Doubt < a.seed.Doubt())
}

// Vote reports the evaluation of the last Valid call.
func (a *BasicAdapter) Vote() (glyph.Evaluation, bool) {
	return a.vote, a.voted
}
