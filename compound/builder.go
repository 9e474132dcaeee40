package compound

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/stave/geom"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/scale"
)

// Builder merges adjacent weak candidates into stronger compounds for
// one partition's nest, accepting a merge only when the shape
// classifier scores it better than its parts.
type Builder struct {
	nest *glyph.Nest
	eval glyph.Evaluator
	sc   scale.Scale
	opts Options
}

// NewBuilder validates the collaborators and builds a Builder.
func NewBuilder(nest *glyph.Nest, eval glyph.Evaluator, sc scale.Scale, opts Options) (*Builder, error) {
	if nest == nil {
		return nil, ErrNilNest
	}
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Builder{nest: nest, eval: eval, sc: sc, opts: opts}, nil
}

// TryCompound attempts to build a compound around seed out of the
// suitable candidates. The attempt has no environment impact: for a
// successful result the caller registers the compound and assigns the
// adapter's vote.
//
// Steps:
//  1. Expand the seed's box by the adapter's margins.
//  2. Keep candidates that are suitable and intersect the expanded box.
//  3. A compound needs the seed plus at least one neighbor.
//  4. Merge all parts into one glyph.
//  5. Let the adapter validate (votes internally, writes shape/doubt).
//  6. If the same pixels previously formed a glyph on which the voted
//     shape was forbidden, reject despite the vote: a prior manual
//     correction outranks the classifier.
func (b *Builder) TryCompound(seed *glyph.Glyph, suitables []*glyph.Glyph, adapter Adapter) (*glyph.Glyph, bool) {
	if seed == nil || adapter == nil {
		return nil, false
	}

	// 1) Expanded search box.
	box := geom.Expand(seed.Bounds(), adapter.BoxDx(), adapter.BoxDy())

	// 2) + 3) Gather the participating parts.
	parts := []*glyph.Glyph{seed}
	for _, g := range suitables {
		if g == seed || !adapter.Suitable(g) {
			continue
		}
		if box.Overlaps(g.Bounds()) {
			parts = append(parts, g)
		}
	}
	if len(parts) < 2 {
		return nil, false
	}

	// 4) Merge.
	comp, err := b.nest.BuildCompound(parts)
	if err != nil {
		return nil, false
	}

	// 5) Classifier-backed validity.
	if !adapter.Valid(comp) {
		return nil, false
	}

	// 6) Forbidden-shape check against the original incarnation.
	if orig, ok := b.nest.Original(comp); ok && orig.IsForbidden(comp.Shape()) {
		log.Warn().Int("original", orig.ID()).Stringer("shape", comp.Shape()).
			Msg("compound vote hit a forbidden shape")

		return nil, false
	}

	return comp, true
}

// RetrieveCompounds runs the partition-wide compound pass: collect the
// suitable glyphs, sort by descending pixel weight (a larger seed is
// more likely correctly classified and a better anchor than a smaller
// one), then let each seed try against only the remaining smaller
// candidates. Accepted compounds are committed into the nest with the
// vote's shape and doubt. Reports the number of compounds built.
func (b *Builder) RetrieveCompounds(maxDoubt float64) int {
	adapter := NewBasicAdapter(b.eval, b.sc, b.opts, maxDoubt)

	var suitables []*glyph.Glyph
	for _, g := range b.nest.Glyphs() {
		if adapter.Suitable(g) {
			suitables = append(suitables, g)
		}
	}
	sort.Slice(suitables, func(i, j int) bool {
		if suitables[i].Weight() != suitables[j].Weight() {
			return suitables[i].Weight() > suitables[j].Weight()
		}

		return suitables[i].ID() < suitables[j].ID()
	})

	built := 0
	for i, seed := range suitables {
		// A seed consumed by an earlier compound fails Suitable inside
		// TryCompound via the activity test; no explicit bookkeeping.
		adapter.SetSeed(seed)

		comp, ok := b.TryCompound(seed, suitables[i+1:], adapter)
		if !ok {
			continue
		}

		comp, err := b.nest.Register(comp)
		if err != nil {
			continue
		}
		if vote, voted := adapter.Vote(); voted {
			comp.SetShape(vote.Shape, vote.Doubt)
		}
		built++
	}

	return built
}

// EvaluateGlyphs assigns the evaluator's vote to every active,
// unclassified glyph that scores within maxDoubt. Reports the number of
// shapes assigned.
func (b *Builder) EvaluateGlyphs(maxDoubt float64) int {
	assigned := 0
	for _, g := range b.nest.Glyphs() {
		if !g.IsActive() || g.IsKnown() {
			continue
		}
		if vote, ok := b.eval.Vote(g, maxDoubt); ok {
			if g.SetShape(vote.Shape, vote.Doubt) {
				assigned++
			}
		}
	}

	return assigned
}

// InspectGlyphs is the standard per-partition sequence: evaluate the
// unclassified population, purge glyphs consumed meanwhile, build
// compounds, then evaluate whatever is still unclassified. Reports the
// shapes assigned and the compounds built.
func (b *Builder) InspectGlyphs(maxDoubt float64) (assigned, built int) {
	assigned = b.EvaluateGlyphs(maxDoubt)
	b.nest.PurgeInactive()
	built = b.RetrieveCompounds(maxDoubt)
	assigned += b.EvaluateGlyphs(maxDoubt)

	return assigned, built
}

// PurgeManualShapes reports glyphs with every manually shaped glyph
// filtered out. The input slice is not modified.
func PurgeManualShapes(glyphs []*glyph.Glyph) []*glyph.Glyph {
	out := make([]*glyph.Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		if !g.IsManual() {
			out = append(out, g)
		}
	}

	return out
}
