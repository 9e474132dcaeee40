package ledger_test

import (
	"fmt"

	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/ledger"
	"github.com/katalvlaran/stave/pix"
	"github.com/katalvlaran/stave/scale"
	"github.com/katalvlaran/stave/sig"
	"github.com/katalvlaran/stave/staff"
	"github.com/katalvlaran/stave/synth"
)

// ExampleBuilder_BuildLedgers scans two chained ledgers below a staff:
// the first anchors on the bottom staff line, the second on the first.
func ExampleBuilder_BuildLedgers() {
	sc, _ := scale.New(20, 3)
	bmp, _ := pix.NewBitmap(400, 400)
	st := synth.Staff(1, 0, 200, 100, sc) // bottom line at y=180

	f := synth.NewFixture()
	first := f.Stick(50, 199, 30, 3)  // one interline below the staff
	second := f.Stick(55, 219, 25, 3) // one interline below the first
	synth.Render(bmp, first, second)

	b, _ := ledger.NewBuilder(sc, sig.NewGraph(), []*staff.Staff{st}, bmp,
		[]*glyph.Glyph{first, second}, ledger.DefaultOptions())
	fmt.Println("ledgers:", b.BuildLedgers())

	for _, index := range []int{1, 2} {
		for _, entry := range st.LedgersAt(index) {
			fmt.Printf("index %d: x=%d shape=%s\n",
				index, entry.Glyph.Bounds().Min.X, entry.Glyph.Shape())
		}
	}
	// Output:
	// ledgers: 2
	// index 1: x=50 shape=LEDGER
	// index 2: x=55 shape=LEDGER
}
