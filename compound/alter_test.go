package compound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stave/compound"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/synth"
)

// Interline 20 gives the repair thresholds: close-stem dx 14px, overlap
// floor 10px, stem length ceiling 60px, natural band up to 30px, edge
// tolerance 20px.

// TestRepair_SharpRebuilt runs the happy path: two short, aligned,
// strongly overlapping stems rebuilt into one sharp sign.
func TestRepair_SharpRebuilt(t *testing.T) {
	f := synth.NewFixture()
	left := f.Stem(30, 100, 2, 40)
	right := f.Stem(40, 102, 2, 40)

	eval := synth.NewTableEvaluator()
	eval.On(glyph.ShapeSharp, 0.8, left, right)

	repairer, err := compound.NewRepairer(f.Nest, eval, testScale(t), compound.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, repairer.Repair(), "one pair fixed")
	assert.False(t, left.IsActive(), "stem consumed by the sign")
	assert.False(t, right.IsActive(), "stem consumed by the sign")

	var sign *glyph.Glyph
	for _, g := range f.Nest.Glyphs() {
		if g.IsActive() && g.Shape() == glyph.ShapeSharp {
			sign = g
		}
	}
	require.NotNil(t, sign, "the rebuilt sign is registered")
	assert.Equal(t, glyph.AlgorithmDoubt, sign.Doubt(), "algorithm-assigned certainty")
	assert.Equal(t, left.Weight()+right.Weight(), sign.Weight())
}

// TestRepair_RestoresOnBetterShape verifies the rollback: when the
// classifier prefers another shape, both stems get their saved shape
// and doubt back.
func TestRepair_RestoresOnBetterShape(t *testing.T) {
	f := synth.NewFixture()
	left := f.Stem(30, 100, 2, 40)
	right := f.Stem(40, 102, 2, 40)

	eval := synth.NewTableEvaluator()
	eval.On(glyph.ShapeFlat, 0.1, left, right)

	repairer, err := compound.NewRepairer(f.Nest, eval, testScale(t), compound.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, repairer.Repair(), "a non-sharp vote fixes nothing")
	assert.Equal(t, glyph.ShapeStem, left.Shape(), "saved shape restored")
	assert.Equal(t, glyph.LeafMaxDoubt, left.Doubt(), "saved doubt restored")
	assert.Equal(t, glyph.ShapeStem, right.Shape())
	assert.True(t, left.IsActive(), "failed attempt keeps the stems")
}

// TestRepair_NaturalBand verifies the moderate-overlap band is detected
// but deliberately left unfixed, stems restored.
func TestRepair_NaturalBand(t *testing.T) {
	f := synth.NewFixture()
	left := f.Stem(30, 100, 2, 40)  // y 100..140
	right := f.Stem(40, 115, 2, 40) // y 115..155: overlap 25, inside the band

	eval := synth.NewTableEvaluator()
	eval.On(glyph.ShapeSharp, 0.1, left, right)

	repairer, err := compound.NewRepairer(f.Nest, eval, testScale(t), compound.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, repairer.Repair(), "the natural branch never fixes")
	assert.Equal(t, glyph.ShapeStem, left.Shape(), "stems restored after the no-op")
	assert.Equal(t, glyph.ShapeStem, right.Shape())
}

// TestRepair_PairingGates covers the rejection gates before any rebuild
// is attempted.
func TestRepair_PairingGates(t *testing.T) {
	t.Run("distance", func(t *testing.T) {
		f := synth.NewFixture()
		f.Stem(30, 100, 2, 40)
		f.Stem(60, 100, 2, 40) // centers 30 apart, ceiling is 14

		repairer, err := compound.NewRepairer(f.Nest, synth.NewTableEvaluator(),
			testScale(t), compound.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 0, repairer.Repair(), "distant stems never pair")
	})

	t.Run("overlap floor", func(t *testing.T) {
		f := synth.NewFixture()
		f.Stem(30, 100, 2, 40)
		f.Stem(40, 135, 2, 40) // overlap 5, floor is 10

		repairer, err := compound.NewRepairer(f.Nest, synth.NewTableEvaluator(),
			testScale(t), compound.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 0, repairer.Repair(), "barely touching stems never pair")
	})

	t.Run("edge alignment", func(t *testing.T) {
		f := synth.NewFixture()
		left := f.Stem(30, 100, 2, 55)  // y 100..155
		right := f.Stem(40, 122, 2, 33) // overlap 33 (sharp branch), top off by 22 > 20

		eval := synth.NewTableEvaluator()
		eval.Fallback(glyph.ShapeSharp, 0.1)
		repairer, err := compound.NewRepairer(f.Nest, eval, testScale(t), compound.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 0, repairer.Repair(), "misaligned edges fail the sharp check")
		assert.Equal(t, glyph.ShapeStem, left.Shape())
		assert.Equal(t, glyph.ShapeStem, right.Shape())
	})

	t.Run("long stems", func(t *testing.T) {
		f := synth.NewFixture()
		f.Stem(30, 100, 2, 80) // above the 60px length ceiling
		f.Stem(40, 100, 2, 80)

		repairer, err := compound.NewRepairer(f.Nest, synth.NewTableEvaluator(),
			testScale(t), compound.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 0, repairer.Repair(), "real stems are too long to be sign fragments")
	})
}
