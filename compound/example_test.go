package compound_test

import (
	"fmt"

	"github.com/katalvlaran/stave/compound"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/scale"
	"github.com/katalvlaran/stave/synth"
)

// ExampleBuilder_InspectGlyphs merges two weak fragments of one
// notehead: neither fragment is recognizable alone, the union is.
func ExampleBuilder_InspectGlyphs() {
	sc, _ := scale.New(20, 3)
	f := synth.NewFixture()
	left := f.Stick(10, 10, 5, 5)
	right := f.Stick(16, 10, 5, 5)

	// A classifier that only recognizes the union of both fragments.
	eval := synth.NewTableEvaluator()
	eval.On(glyph.ShapeNoteheadBlack, 0.3, left, right)

	builder, _ := compound.NewBuilder(f.Nest, eval, sc, compound.DefaultOptions())
	assigned, built := builder.InspectGlyphs(glyph.SymbolMaxDoubt)
	fmt.Println("assigned:", assigned, "compounds:", built)

	for _, g := range f.Nest.Glyphs() {
		if g.IsActive() {
			fmt.Println("survivor:", g.Shape(), "weight", g.Weight())
		}
	}
	// Output:
	// assigned: 0 compounds: 1
	// survivor: NOTEHEAD_BLACK weight 50
}

// ExampleRepairer_Repair rebuilds a sharp sign from two stems that the
// segmenter split apart.
func ExampleRepairer_Repair() {
	sc, _ := scale.New(20, 3)
	f := synth.NewFixture()
	left := f.Stem(30, 100, 2, 40)
	right := f.Stem(40, 102, 2, 40)

	eval := synth.NewTableEvaluator()
	eval.On(glyph.ShapeSharp, 0.8, left, right)

	repairer, _ := compound.NewRepairer(f.Nest, eval, sc, compound.DefaultOptions())
	fmt.Println("fixed:", repairer.Repair())

	for _, g := range f.Nest.Glyphs() {
		if g.IsActive() {
			fmt.Println("survivor:", g.Shape())
		}
	}
	// Output:
	// fixed: 1
	// survivor: SHARP
}
