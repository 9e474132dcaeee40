package synth

import (
	"github.com/katalvlaran/stave/geom"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/pix"
	"github.com/katalvlaran/stave/scale"
	"github.com/katalvlaran/stave/staff"
)

// Fixture builds deterministic glyph populations for tests and
// examples: sticks, stems and staves with hand-picked geometry,
// registered in a fresh nest with sequential ids.
type Fixture struct {
	Nest        *glyph.Nest
	nextSection int
}

// NewFixture creates a fixture with an empty nest.
func NewFixture() *Fixture {
	return &Fixture{Nest: glyph.NewNest()}
}

// GlyphOption mutates a freshly registered fixture glyph.
type GlyphOption func(*glyph.Glyph)

// WithShape assigns an automatic shape and doubt.
func WithShape(s glyph.Shape, doubt float64) GlyphOption {
	return func(g *glyph.Glyph) { g.SetShape(s, doubt) }
}

// WithManualShape fixes a shape by hand.
func WithManualShape(s glyph.Shape) GlyphOption {
	return func(g *glyph.Glyph) { g.SetManualShape(s) }
}

// WithForbidden forbids a shape on the glyph.
func WithForbidden(s glyph.Shape) GlyphOption {
	return func(g *glyph.Glyph) { g.Forbid(s) }
}

func (f *Fixture) section(orient glyph.Orientation, runs []glyph.Run) *glyph.Section {
	f.nextSection++
	s, err := glyph.NewSection(f.nextSection, orient, runs)
	if err != nil {
		panic(err) // fixture misuse, fail loudly in tests
	}

	return s
}

func (f *Fixture) register(s *glyph.Section, opts []GlyphOption) *glyph.Glyph {
	g, err := glyph.Assemble(s)
	if err != nil {
		panic(err)
	}
	g, err = f.Nest.Register(g)
	if err != nil {
		panic(err)
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Stick registers a horizontal stick at (x, y): length columns wide,
// thickness rows tall.
func (f *Fixture) Stick(x, y, length, thickness int, opts ...GlyphOption) *glyph.Glyph {
	runs := make([]glyph.Run, thickness)
	for r := range runs {
		runs[r] = glyph.Run{Pos: y + r, Start: x, Length: length}
	}

	return f.register(f.section(glyph.Horizontal, runs), opts)
}

// Stem registers a vertical stem at (x, y): width columns wide, height
// rows tall, shaped STEM with leaf-level doubt unless options override.
func (f *Fixture) Stem(x, y, width, height int, opts ...GlyphOption) *glyph.Glyph {
	runs := make([]glyph.Run, width)
	for c := range runs {
		runs[c] = glyph.Run{Pos: x + c, Start: y, Length: height}
	}
	opts = append([]GlyphOption{WithShape(glyph.ShapeStem, glyph.LeafMaxDoubt)}, opts...)

	return f.register(f.section(glyph.Vertical, runs), opts)
}

// StaffOption mutates staff geometry before construction.
type StaffOption func(*staffConfig)

type staffConfig struct {
	slope float64
}

// WithSlope tilts both boundary lines by dy per dx.
func WithSlope(slope float64) StaffOption {
	return func(c *staffConfig) { c.slope = slope }
}

// Staff builds a five-line staff spanning [left, right] whose top line
// sits at yTop; the bottom line follows four interlines below.
func Staff(id, left, right, yTop int, sc scale.Scale, opts ...StaffOption) *staff.Staff {
	cfg := staffConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	dx := float64(right - left)
	top, err := staff.NewLine(
		geom.Pt{X: float64(left), Y: float64(yTop)},
		geom.Pt{X: float64(right), Y: float64(yTop) + (cfg.slope * dx)},
	)
	if err != nil {
		panic(err)
	}
	yBot := float64(yTop + 4*sc.Interline())
	bottom, err := staff.NewLine(
		geom.Pt{X: float64(left), Y: yBot},
		geom.Pt{X: float64(right), Y: yBot + (cfg.slope * dx)},
	)
	if err != nil {
		panic(err)
	}

	st, err := staff.New(id, top, bottom)
	if err != nil {
		panic(err)
	}

	return st
}

// Render paints the glyphs' sections onto the bitmap so pixel probes
// (e.g. the convexity check) see real ink.
func Render(bmp *pix.Bitmap, glyphs ...*glyph.Glyph) {
	for _, g := range glyphs {
		for _, s := range g.Sections() {
			s.EachPixel(func(x, y int) { bmp.Set(x, y, true) })
		}
	}
}

// TableEvaluator is a deterministic, map-driven glyph.Evaluator:
// votes are keyed by section signature, so a vote can be prepared for a
// compound before that compound even exists, by naming its parts.
type TableEvaluator struct {
	votes    map[string]glyph.Evaluation
	fallback *glyph.Evaluation
}

// NewTableEvaluator creates an evaluator with no votes: every glyph is
// rejected until On or Fallback prepares an answer.
func NewTableEvaluator() *TableEvaluator {
	return &TableEvaluator{votes: make(map[string]glyph.Evaluation)}
}

// On prepares the vote for the glyph whose sections are exactly the
// union of the parts' sections.
func (e *TableEvaluator) On(shape glyph.Shape, doubt float64, parts ...*glyph.Glyph) {
	var sections []*glyph.Section
	for _, p := range parts {
		sections = append(sections, p.Sections()...)
	}
	g, err := glyph.Assemble(sections...)
	if err != nil {
		panic(err)
	}
	e.votes[g.Signature()] = glyph.Evaluation{Shape: shape, Doubt: doubt}
}

// Fallback prepares the vote returned for any glyph without a prepared
// answer.
func (e *TableEvaluator) Fallback(shape glyph.Shape, doubt float64) {
	e.fallback = &glyph.Evaluation{Shape: shape, Doubt: doubt}
}

// Vote implements glyph.Evaluator.
func (e *TableEvaluator) Vote(g *glyph.Glyph, maxDoubt float64) (glyph.Evaluation, bool) {
	ev, ok := e.votes[g.Signature()]
	if !ok {
		if e.fallback == nil {
			return glyph.Evaluation{}, false
		}
		ev = *e.fallback
	}
	if ev.Doubt > maxDoubt {
		return glyph.Evaluation{}, false
	}

	return ev, true
}
