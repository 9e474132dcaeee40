package sig_test

import (
	"fmt"

	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/sig"
)

// ExampleGraph_ReduceExclusions resolves an abscissa conflict between
// two rival ledger interpretations: the better-graded one survives.
func ExampleGraph_ReduceExclusions() {
	newStick := func(id, x int) *glyph.Glyph {
		s, _ := glyph.NewSection(id, glyph.Horizontal,
			[]glyph.Run{{Pos: 0, Start: x, Length: 30}})
		g, _ := glyph.Assemble(s)

		return g
	}

	gr := sig.NewGraph()
	strong, _ := gr.AddInter(newStick(1, 50), glyph.ShapeLedger, 0.8, "on target")
	weak, _ := gr.AddInter(newStick(2, 70), glyph.ShapeLedger, 0.4, "shifted")

	ex, _ := gr.InsertExclusion(strong.ID, weak.ID, sig.CauseOverlap)
	deleted := gr.ReduceExclusions(sig.ModeStrict, []*sig.Exclusion{ex})

	for _, in := range deleted {
		fmt.Println("deleted:", in.Details)
	}
	fmt.Println("survivors:", gr.Len(), "exclusions:", gr.ExclusionCount())
	// Output:
	// deleted: shifted
	// survivors: 1 exclusions: 0
}
