package ledger

import (
	"image"
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/stave/check"
	"github.com/katalvlaran/stave/geom"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/pix"
	"github.com/katalvlaran/stave/scale"
	"github.com/katalvlaran/stave/sig"
	"github.com/katalvlaran/stave/staff"
)

// Builder retrieves ledgers for one system: an iterative geometric scan
// that locates line-like candidates at increasing distance from each
// staff, each accepted virtual line serving as the ordinate reference
// for the next one, with abscissa conflicts resolved in the
// interpretation graph.
type Builder struct {
	sc     scale.Scale
	graph  *sig.Graph
	staves []*staff.Staff
	opts   Options

	short *check.Suite[stickContext]
	long  *check.Suite[stickContext]

	candidates []*glyph.Glyph

	yMargin   int
	maxShort  int
	deletions int
}

// NewBuilder validates the system inputs, assembles the check suites
// and filters the candidate sticks: raw width below the low length
// bound drops a stick outright, and so does a midpoint inside a good
// beam (a ledger candidate there is beam ink, not a line).
func NewBuilder(sc scale.Scale, graph *sig.Graph, staves []*staff.Staff, source pix.Source, candidates []*glyph.Glyph, opts Options) (*Builder, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if source == nil {
		return nil, ErrNilSource
	}
	if len(staves) == 0 {
		return nil, ErrNoStaves
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{
		sc:       sc,
		graph:    graph,
		staves:   staves,
		opts:     opts,
		yMargin:  sc.ToPixels(opts.MarginY),
		maxShort: sc.ToPixels(opts.MaxShortLength),
	}

	var err error
	if b.short, err = newSuite("ledger-short", sc, source, opts); err != nil {
		return nil, err
	}
	if b.long, err = newSuite("ledger-long", sc, source, opts); err != nil {
		return nil, err
	}

	minWidth := sc.ToPixels(opts.MinLengthLow)
	beams := graph.GoodInters(glyph.ShapeBeam)
	for _, stick := range candidates {
		if stick.Bounds().Dx() < minWidth {
			continue
		}
		if beamOverlap(beams, stick) {
			continue
		}
		b.candidates = append(b.candidates, stick)
	}
	sort.Slice(b.candidates, func(i, j int) bool {
		bi, bj := b.candidates[i].Bounds().Min.X, b.candidates[j].Bounds().Min.X
		if bi != bj {
			return bi < bj
		}

		return b.candidates[i].ID() < b.candidates[j].ID()
	})

	return b, nil
}

// Candidates reports the filtered candidate sticks, sorted by abscissa.
func (b *Builder) Candidates() []*glyph.Glyph {
	out := make([]*glyph.Glyph, len(b.candidates))
	copy(out, b.candidates)

	return out
}

// Deletions reports the number of interpretations removed by exclusion
// reduction so far.
func (b *Builder) Deletions() int { return b.deletions }

// beamOverlap reports whether the stick's midpoint lies inside a good
// beam. Beams arrive sorted by abscissa, so the scan stops at the first
// beam starting right of the midpoint.
func beamOverlap(beams []*sig.Inter, stick *glyph.Glyph) bool {
	mid := stick.Midpoint()
	for _, beam := range beams {
		if geom.ContainsPt(beam.Bounds(), mid) {
			log.Debug().Int("stick", stick.ID()).Int64("beam", int64(beam.ID)).
				Msg("ledger candidate overlaps beam")

			return true
		}
		if float64(beam.Bounds().Min.X) > mid.X {
			return false
		}
	}

	return false
}

// sideScan is the per-side state machine of the virtual-line expansion:
// the magnitude of the next index to probe, and a terminal flag set by
// the first empty line. No gap is ever skipped.
type sideScan struct {
	sign int // -1 above the staff, +1 below
	next int // magnitude of the next index, starting at 1
	done bool
}

func (s *sideScan) index() int { return s.sign * s.next }

func (s *sideScan) advance(found int) {
	if found == 0 {
		s.done = true

		return
	}
	s.next++
}

// BuildLedgers scans every staff, both sides independently, walking
// outward one virtual line at a time until a line yields no survivor.
// Reports the total number of ledgers recorded.
func (b *Builder) BuildLedgers() int {
	total := 0
	for _, st := range b.staves {
		for _, scan := range []*sideScan{{sign: -1, next: 1}, {sign: 1, next: 1}} {
			for !scan.done {
				found := b.lookupLine(st, scan.index())
				total += found
				scan.advance(found)
			}
		}
	}

	return total
}

// lookupLine looks for ledgers on one virtual line of a staff and
// reports the number that survived reduction.
//
// Steps:
//  1. Build the region of interest: the relevant boundary line's
//     bounds, shifted by index interlines and grown vertically.
//  2. Keep candidates whose midpoint falls inside.
//  3. Resolve the ordinate reference: the staff line for |index| 1,
//     otherwise an accepted ledger one step closer with abscissa
//     overlap; without one the candidate is an orphan and is rejected,
//     whatever its own grade.
//  4. Grade against the target ordinate (reference plus one signed
//     interline) with the length-selected suite.
//  5. Commit survivors of the acceptance gate into the graph; a
//     duplicate ledger interpretation for the same stick is logged as
//     an anomaly and insertion proceeds.
//  6. Reduce abscissa conflicts; record what remains in the staff
//     table at this index, as reference for the next line out.
func (b *Builder) lookupLine(st *staff.Staff, index int) int {
	log.Debug().Int("staff", st.ID()).Int("index", index).Msg("checking virtual line")

	// 1) Region of interest.
	line := st.Bottom()
	sign := 1
	if index < 0 {
		line = st.Top()
		sign = -1
	}
	box := line.Bounds().Add(image.Pt(0, index*b.sc.Interline()))
	box = geom.Expand(box, 0, 2*b.yMargin)

	var accepted []*sig.Inter
	for _, stick := range b.candidates {
		// 2) Rough containment.
		if !geom.ContainsPt(box, stick.Midpoint()) {
			continue
		}

		// 3) Connected reference chain back to the staff.
		yRef, ok := b.yReference(st, index, stick)
		if !ok {
			continue
		}

		// 4) Grade against the target ordinate.
		yTarget := yRef + float64(sign*b.sc.Interline())
		suite := b.selectSuite(stick)
		impacts, err := suite.Impacts(stickContext{stick: stick, yTarget: yTarget})
		if err != nil || impacts.Grade() < suite.MinThreshold() {
			continue
		}

		// 5) Commit into the graph.
		if prev, dup := b.graph.FindInter(stick.ID(), glyph.ShapeLedger); dup {
			log.Error().Stringer("inter", prev).Int("index", index).
				Msg("double ledger definition")
		}
		inter, err := b.graph.AddInter(stick, glyph.ShapeLedger, impacts.Grade(), impacts.Dump())
		if err != nil {
			continue
		}
		accepted = append(accepted, inter)
	}

	if len(accepted) == 0 {
		return 0
	}

	// 6) Conflict reduction, then the reference table.
	accepted = b.reduceLine(accepted)
	for _, in := range accepted {
		in.Glyph.SetShape(glyph.ShapeLedger, glyph.AlgorithmDoubt)
		if err := st.AddLedger(index, staff.Ledger{Inter: in.ID, Glyph: in.Glyph}); err != nil {
			log.Error().Err(err).Stringer("inter", in).Msg("ledger not recorded")
		}
	}

	return len(accepted)
}

// selectSuite picks the check suite matching the candidate's length.
func (b *Builder) selectSuite(stick *glyph.Glyph) *check.Suite[stickContext] {
	if stick.Length() <= b.maxShort {
		return b.short
	}

	return b.long
}

// yReference resolves the ordinate reference for a candidate at the
// given index: the staff boundary line itself next to the staff, else a
// previously accepted ledger one step closer on the same side whose
// abscissa range overlaps the candidate's. The reference is evaluated
// at the candidate's mid abscissa, extrapolating from the ledger's end
// points when the abscissa falls outside its width.
func (b *Builder) yReference(st *staff.Staff, index int, stick *glyph.Glyph) (float64, bool) {
	prevIndex := index - 1
	if index < 0 {
		prevIndex = index + 1
	}
	midX := stick.Midpoint().X

	if prevIndex == 0 {
		if index < 0 {
			return st.Top().YAt(midX), true
		}

		return st.Bottom().YAt(midX), true
	}

	entries := st.LedgersAt(prevIndex)
	if len(entries) == 0 {
		return 0, false // no closer anchor at all: orphan
	}

	stickBox := stick.Bounds()
	for _, e := range entries {
		if e.Glyph == stick {
			continue // can happen when a stick is probed for two indices
		}
		lBox := e.Glyph.Bounds()
		if geom.XOverlap(stickBox, lBox) <= 0 {
			continue
		}

		if geom.XEmbraces(lBox, midX) {
			if fit, err := e.Glyph.LineFit(); err == nil {
				return fit.YAt(midX), true
			}
		}

		return geom.SegmentYAt(e.Glyph.StartPoint(), e.Glyph.StopPoint(), midX), true
	}

	return 0, false // anchors exist but none overlaps: local orphan
}

// reduceLine resolves abscissa conflicts within one virtual line's
// accepted population and reports the survivors. Entries are sorted by
// abscissa, so each one only scans rightward neighbors until the first
// non-overlap; every overlapping pair becomes an OVERLAP exclusion, and
// a strict reduction over exactly those fresh edges removes the losers
// from the graph and from the result.
func (b *Builder) reduceLine(accepted []*sig.Inter) []*sig.Inter {
	sort.Slice(accepted, func(i, j int) bool {
		bi, bj := accepted[i].Bounds().Min.X, accepted[j].Bounds().Min.X
		if bi != bj {
			return bi < bj
		}

		return accepted[i].ID < accepted[j].ID
	})

	var fresh []*sig.Exclusion
	for i, in := range accepted {
		for _, other := range accepted[i+1:] {
			if geom.XOverlap(in.Bounds(), other.Bounds()) <= 0 {
				break // sorted: no farther neighbor can overlap
			}
			ex, err := b.graph.InsertExclusion(in.ID, other.ID, sig.CauseOverlap)
			if err != nil {
				continue
			}
			fresh = append(fresh, ex)
		}
	}
	if len(fresh) == 0 {
		return accepted
	}

	deleted := b.graph.ReduceExclusions(sig.ModeStrict, fresh)
	if len(deleted) == 0 {
		return accepted
	}
	b.deletions += len(deleted)

	gone := make(map[sig.InterID]struct{}, len(deleted))
	for _, in := range deleted {
		gone[in.ID] = struct{}{}
	}
	survivors := accepted[:0]
	for _, in := range accepted {
		if _, dead := gone[in.ID]; !dead {
			survivors = append(survivors, in)
		}
	}

	return survivors
}

// TargetFor reports the best virtual line index and target ordinate for
// a free-standing candidate stick, based on its pitch position relative
// to the staves. Candidates inside a staff's core height have no ledger
// target. Used by inspection tooling to replay the check suite on a
// hand-picked stick.
func (b *Builder) TargetFor(stick *glyph.Glyph) (IndexTarget, bool) {
	c := stick.Centroid()
	yMid := stick.Midpoint().Y

	for _, st := range b.staves {
		rawPitch := st.PitchPositionAt(c)
		if math.Abs(rawPitch) <= 4 {
			return IndexTarget{}, false // within staff core height
		}

		sign := 1
		if rawPitch < 0 {
			sign = -1
		}
		rawIndex := int(math.RoundToEven((math.Abs(rawPitch) - 4) / 2))
		iMin := max(1, rawIndex-1)
		iMax := rawIndex + 1

		best := IndexTarget{}
		bestDy := math.MaxFloat64
		found := false
		for i := iMin; i <= iMax; i++ {
			index := i * sign
			yRef, ok := b.yReference(st, index, stick)
			if !ok {
				continue
			}
			yTarget := yRef + float64(sign*b.sc.Interline())
			if dy := math.Abs(yTarget - yMid); dy < bestDy {
				bestDy = dy
				best = IndexTarget{Index: index, Target: yTarget}
				found = true
			}
		}
		if found {
			return best, true
		}
	}

	return IndexTarget{}, false
}
