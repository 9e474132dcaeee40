package compound

import (
	"image"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/stave/geom"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/scale"
)

// Repairer detects pairs of thin, short, vertically close stems that
// likely come from a mis-segmented alteration sign (sharp or natural)
// and tries to rebuild the sign as one compound.
type Repairer struct {
	nest *glyph.Nest
	eval glyph.Evaluator
	opts Options

	// Pixel-space thresholds, derived once from the sheet scale.
	maxDx         int
	minOverlap    int
	maxLength     int
	maxNatural    int
	maxNonOverlap int
}

// NewRepairer validates the collaborators and derives the pixel
// thresholds.
func NewRepairer(nest *glyph.Nest, eval glyph.Evaluator, sc scale.Scale, opts Options) (*Repairer, error) {
	if nest == nil {
		return nil, ErrNilNest
	}
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Repairer{
		nest:          nest,
		eval:          eval,
		opts:          opts,
		maxDx:         sc.ToPixels(opts.MaxCloseStemDx),
		minOverlap:    sc.ToPixels(opts.MinCloseStemOverlap),
		maxLength:     sc.ToPixels(opts.MaxCloseStemLength),
		maxNatural:    sc.ToPixels(opts.MaxNaturalOverlap),
		maxNonOverlap: sc.ToPixels(opts.MaxSharpNonOverlap),
	}, nil
}

// Repair scans the partition for close stem pairs and attempts the
// alter-sign rebuild on each. Reports the number of pairs fixed.
//
// For every ordered pair within the horizontal ceiling and above the
// vertical overlap floor, both stems' shapes are cleared first so they
// do not bias re-evaluation. A failed attempt restores the saved
// (shape, doubt) of both: this is the one place in the core where a
// tentative mutation is explicitly undone instead of discarded.
func (r *Repairer) Repair() int {
	// 1) Short active stems, ordered by abscissa center.
	var stems []*glyph.Glyph
	for _, g := range r.nest.Glyphs() {
		if g.IsActive() && g.Shape() == glyph.ShapeStem && g.Bounds().Dy() <= r.maxLength {
			stems = append(stems, g)
		}
	}
	sort.Slice(stems, func(i, j int) bool {
		ci, cj := geom.Center(stems[i].Bounds()).X, geom.Center(stems[j].Bounds()).X
		if ci != cj {
			return ci < cj
		}

		return stems[i].ID() < stems[j].ID()
	})

	fixed := 0
	for i, left := range stems {
		if left.Shape() != glyph.ShapeStem {
			continue // consumed or hidden by an earlier pair
		}
		lBox := left.Bounds()
		lX := geom.Center(lBox).X

		for _, right := range stems[i+1:] {
			if right.Shape() != glyph.ShapeStem {
				continue
			}
			rBox := right.Bounds()

			// 2) Horizontal distance: the list is sorted, so the first
			//    too-distant neighbor ends the scan for this stem.
			if geom.Center(rBox).X-lX > r.maxDx {
				break
			}

			// 3) Vertical overlap floor.
			overlap := min(lBox.Max.Y, rBox.Max.Y) - max(lBox.Min.Y, rBox.Min.Y)
			if overlap < r.minOverlap {
				continue
			}

			log.Info().Int("left", left.ID()).Int("right", right.ID()).
				Int("overlap", overlap).Msg("close stems")

			// 4) Hide the stems so they do not perturb the vote.
			savedL := glyph.Evaluation{Shape: left.Shape(), Doubt: left.Doubt()}
			savedR := glyph.Evaluation{Shape: right.Shape(), Doubt: right.Doubt()}
			left.ClearShape()
			right.ClearShape()

			var success bool
			if overlap <= r.maxNatural {
				success = r.repairNatural(lBox, rBox)
			} else {
				success = r.repairSharp(lBox, rBox)
			}

			if success {
				fixed++
			} else {
				left.SetShape(savedL.Shape, savedL.Doubt)
				right.SetShape(savedR.Shape, savedR.Doubt)
			}
		}
	}

	return fixed
}

// repairNatural would rebuild a natural sign from a moderately
// overlapping stem pair. Deliberately unimplemented: the upstream
// recovery for this band was never designed, so the pair is always
// reported as unfixed and the caller restores both stems.
func (r *Repairer) repairNatural(_, _ image.Rectangle) bool {
	return false
}

// repairSharp checks that around the two stem boxes there actually is a
// sharp sign: edges aligned within tolerance, the surrounding glyphs
// merged, and the classifier voting exactly SHARP under a tight ceiling.
func (r *Repairer) repairSharp(lBox, rBox image.Rectangle) bool {
	// 1) Both edges of the pair must align within tolerance.
	dyTop := abs(lBox.Min.Y - rBox.Min.Y)
	dyBot := abs(lBox.Max.Y - rBox.Max.Y)
	if dyTop > r.maxNonOverlap || dyBot > r.maxNonOverlap {
		return false
	}

	// 2) Outer box centered between the stems.
	lX := geom.Center(lBox).X
	rX := geom.Center(rBox).X
	halfWidth := (3 * r.maxDx) / 2
	vMargin := r.minOverlap / 2
	outer := image.Rect(
		((lX+rX)/2)-halfWidth,
		min(lBox.Min.Y, rBox.Min.Y)-vMargin,
		((lX+rX)/2)+halfWidth,
		max(lBox.Max.Y, rBox.Max.Y)+vMargin,
	)

	// 3) Candidate parts: everything in the box except manual shapes.
	parts := PurgeManualShapes(r.nest.GlyphsIn(outer))
	if len(parts) == 0 {
		return false
	}

	comp, err := r.nest.BuildCompound(parts)
	if err != nil {
		return false
	}

	// 4) The vote must be exactly SHARP.
	vote, ok := r.eval.Vote(comp, r.opts.AlterMaxDoubt)
	if !ok {
		return false
	}
	if vote.Shape != glyph.ShapeSharp {
		log.Warn().Stringer("shape", vote.Shape).Float64("doubt", vote.Doubt).
			Msg("shape better than sharp for close stems")

		return false
	}

	comp, err = r.nest.Register(comp)
	if err != nil {
		return false
	}
	comp.SetShape(glyph.ShapeSharp, glyph.AlgorithmDoubt)
	log.Info().Int("compound", comp.ID()).Msg("sharp glyph rebuilt")

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
