package glyph

import (
	"image"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/stave/geom"
)

// Glyph is a candidate pixel region considered for symbolic
// classification. A glyph owns its member sections while active; a set
// shape always carries a doubt, and manual shapes are never overwritten
// by automatic classification.
type Glyph struct {
	id       int
	sections []*Section
	bounds   image.Rectangle
	weight   int

	shape  Shape
	doubt  float64
	manual bool

	forbidden map[Shape]struct{}

	fitted  bool
	fit     geom.Line
	fitErr  error
	centerX float64
	centerY float64
}

// Assemble builds an unregistered glyph (id 0) from the given sections,
// deduplicated by section id. Assemble has no environment impact: the
// sections keep their current owners until the glyph is registered.
func Assemble(sections ...*Section) (*Glyph, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	g := &Glyph{forbidden: make(map[Shape]struct{})}
	seen := make(map[int]struct{}, len(sections))
	for _, s := range sections {
		if s == nil {
			return nil, ErrNoSections
		}
		if _, dup := seen[s.id]; dup {
			continue
		}
		seen[s.id] = struct{}{}
		g.sections = append(g.sections, s)

		if len(g.sections) == 1 {
			g.bounds = s.bounds
		} else {
			g.bounds = g.bounds.Union(s.bounds)
		}
		g.weight += s.weight
	}
	sort.Slice(g.sections, func(i, j int) bool { return g.sections[i].id < g.sections[j].id })

	// Weighted center of ink, accumulated per run in section order.
	var sx, sy float64
	for _, s := range g.sections {
		for _, r := range s.runs {
			l := float64(r.Length)
			along := float64(r.Start) + (l / 2)
			cross := float64(r.Pos) + 0.5
			if s.orient == Horizontal {
				sx += l * along
				sy += l * cross
			} else {
				sx += l * cross
				sy += l * along
			}
		}
	}
	g.centerX = sx / float64(g.weight)
	g.centerY = sy / float64(g.weight)

	return g, nil
}

// ID reports the glyph identifier, 0 until the glyph is registered.
func (g *Glyph) ID() int { return g.id }

// Sections reports the member sections, sorted by id.
func (g *Glyph) Sections() []*Section {
	out := make([]*Section, len(g.sections))
	copy(out, g.sections)

	return out
}

// Signature reports the canonical section-id signature of the glyph.
// Two glyphs built from the same sections share one signature.
func (g *Glyph) Signature() string {
	var b strings.Builder
	for i, s := range g.sections {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(s.id))
	}

	return b.String()
}

// Bounds reports the axis-aligned bounding box.
func (g *Glyph) Bounds() image.Rectangle { return g.bounds }

// Weight reports the foreground pixel count.
func (g *Glyph) Weight() int { return g.weight }

// Centroid reports the weighted center of ink.
func (g *Glyph) Centroid() geom.Pt { return geom.Pt{X: g.centerX, Y: g.centerY} }

// IsActive reports whether every member section still points back to
// this glyph. An unregistered glyph is never active.
func (g *Glyph) IsActive() bool {
	if g.id == 0 {
		return false
	}
	for _, s := range g.sections {
		if s.owner != g.id {
			return false
		}
	}

	return true
}

// Shape reports the assigned shape, ShapeNone when unclassified.
func (g *Glyph) Shape() Shape { return g.shape }

// Doubt reports the doubt attached to the assigned shape; meaningless
// while the glyph is unclassified.
func (g *Glyph) Doubt() float64 { return g.doubt }

// IsKnown reports whether a shape is assigned.
func (g *Glyph) IsKnown() bool { return g.shape != ShapeNone }

// IsManual reports whether the shape was fixed by hand.
func (g *Glyph) IsManual() bool { return g.manual }

// SetShape assigns shape and doubt from automatic classification.
// Reports false, without modification, when the glyph carries a manual
// shape or when shape is ShapeNone (use ClearShape for that).
func (g *Glyph) SetShape(shape Shape, doubt float64) bool {
	if shape == ShapeNone {
		return false
	}
	if g.manual {
		log.Warn().Int("glyph", g.id).Stringer("manual", g.shape).Stringer("rejected", shape).
			Msg("attempt to overwrite a manual shape")

		return false
	}
	g.shape, g.doubt = shape, doubt

	return true
}

// SetManualShape fixes shape by hand with full certainty. Manual shapes
// survive every later automatic pass.
func (g *Glyph) SetManualShape(shape Shape) {
	g.shape, g.doubt, g.manual = shape, ManualDoubt, true
}

// ClearShape removes the automatic shape assignment so the glyph does
// not bias a re-evaluation. Reports false for manual shapes.
func (g *Glyph) ClearShape() bool {
	if g.manual {
		return false
	}
	g.shape, g.doubt = ShapeNone, 0

	return true
}

// Forbid marks shape as rejected for this glyph, typically after a
// manual correction; later automatic votes for it must not stick.
func (g *Glyph) Forbid(shape Shape) {
	g.forbidden[shape] = struct{}{}
}

// IsForbidden reports whether shape was previously forbidden.
func (g *Glyph) IsForbidden(shape Shape) bool {
	_, ok := g.forbidden[shape]

	return ok
}

// --- horizontal stick geometry ---------------------------------------

// Length reports the horizontal extent in pixels.
func (g *Glyph) Length() int { return g.bounds.Dx() }

// MeanThickness reports weight divided by horizontal extent, the mean
// vertical thickness of a near-horizontal stick.
func (g *Glyph) MeanThickness() float64 {
	return float64(g.weight) / float64(g.bounds.Dx())
}

// LineFit reports the cached least-squares line through the glyph's
// per-column mean ordinates, weighted by column ink.
func (g *Glyph) LineFit() (geom.Line, error) {
	g.ensureFit()

	return g.fit, g.fitErr
}

// MeanDistance reports the mean absolute distance of the glyph's ink to
// its fitted line, the straightness measure of ledger grading.
func (g *Glyph) MeanDistance() float64 {
	g.ensureFit()
	if g.fitErr != nil {
		return 0
	}

	return g.fit.MeanDistance()
}

// StartPoint reports the left end of the stick on its fitted line.
func (g *Glyph) StartPoint() geom.Pt {
	return g.endPoint(float64(g.bounds.Min.X))
}

// StopPoint reports the right end of the stick on its fitted line.
func (g *Glyph) StopPoint() geom.Pt {
	return g.endPoint(float64(g.bounds.Max.X))
}

// Midpoint reports the middle of the start and stop points.
func (g *Glyph) Midpoint() geom.Pt {
	p, q := g.StartPoint(), g.StopPoint()

	return geom.Pt{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

func (g *Glyph) endPoint(x float64) geom.Pt {
	g.ensureFit()
	if g.fitErr != nil {
		return geom.Pt{X: x, Y: g.centerY}
	}

	return geom.Pt{X: x, Y: g.fit.YAt(x)}
}

// ensureFit computes the per-column sample once. Columns are walked in
// ascending order so float accumulation is reproducible.
func (g *Glyph) ensureFit() {
	if g.fitted {
		return
	}
	g.fitted = true

	width := g.bounds.Dx()
	sums := make([]float64, width)
	counts := make([]float64, width)
	for _, s := range g.sections {
		s.EachPixel(func(x, y int) {
			col := x - g.bounds.Min.X
			sums[col] += float64(y) + 0.5
			counts[col]++
		})
	}

	pts := make([]geom.Pt, 0, width)
	weights := make([]float64, 0, width)
	for col := 0; col < width; col++ {
		if counts[col] == 0 {
			continue
		}
		pts = append(pts, geom.Pt{
			X: float64(g.bounds.Min.X+col) + 0.5,
			Y: sums[col] / counts[col],
		})
		weights = append(weights, counts[col])
	}

	g.fit, g.fitErr = geom.Fit(pts, weights)
}
