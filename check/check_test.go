package check_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stave/check"
)

// ctx is the trivial candidate type of these tests: the raw value itself.
type ctx struct{ v float64 }

func identity(c ctx) float64 { return c.v }

func covariant(weight float64) check.Check[ctx] {
	return check.Check[ctx]{
		Name:      "Cov",
		Low:       1,
		High:      3,
		Covariant: true,
		Weight:    weight,
		Failure:   "Test-TooLow",
		Value:     identity,
	}
}

func contravariant(weight float64) check.Check[ctx] {
	return check.Check[ctx]{
		Name:    "Contra",
		Low:     1,
		High:    3,
		Weight:  weight,
		Failure: "Test-TooHigh",
		Value:   identity,
	}
}

// TestSuite_Validation exercises every construction error.
func TestSuite_Validation(t *testing.T) {
	_, err := check.NewSuite[ctx]("bad", check.WithMinThreshold(1.5))
	assert.ErrorIs(t, err, check.ErrBadThreshold, "threshold above 1 must be rejected")

	s, err := check.NewSuite[ctx]("suite")
	require.NoError(t, err, "default construction should succeed")

	bad := covariant(1)
	bad.Low, bad.High = 3, 3
	assert.ErrorIs(t, s.Add(bad), check.ErrBadBounds, "Low == High must be rejected")

	bad = covariant(-1)
	assert.ErrorIs(t, s.Add(bad), check.ErrBadWeight, "negative weight must be rejected")

	bad = covariant(1)
	bad.Value = nil
	assert.ErrorIs(t, s.Add(bad), check.ErrNilValue, "nil value function must be rejected")

	_, err = s.Impacts(ctx{v: 2})
	assert.ErrorIs(t, err, check.ErrNoChecks, "empty suite cannot grade")
}

// TestCheck_CovariantGrading pins the interpolation ramp and the veto
// zone of a higher-is-better check.
func TestCheck_CovariantGrading(t *testing.T) {
	s, err := check.NewSuite[ctx]("cov")
	require.NoError(t, err)
	require.NoError(t, s.Add(covariant(1)))

	cases := []struct {
		value  float64
		grade  float64
		failed bool
	}{
		{0.5, 0, true},  // below Low: veto
		{1, 0, false},   // exactly Low: worst grade, no veto
		{2, 0.5, false}, // midway
		{3, 1, false},   // at High: best
		{9, 1, false},   // above High: clamped
	}
	for _, c := range cases {
		im, err := s.Impacts(ctx{v: c.value})
		require.NoError(t, err)
		_, vetoed := im.Failure()
		assert.Equal(t, c.failed, vetoed, "value %v veto state", c.value)
		assert.InDelta(t, c.grade, im.Grade(), 1e-12, "value %v grade", c.value)
	}
}

// TestCheck_ContravariantGrading mirrors the ramp for lower-is-better.
func TestCheck_ContravariantGrading(t *testing.T) {
	s, err := check.NewSuite[ctx]("contra")
	require.NoError(t, err)
	require.NoError(t, s.Add(contravariant(1)))

	im, err := s.Impacts(ctx{v: 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, im.Grade(), "at Low a contravariant check grades 1")

	im, _ = s.Impacts(ctx{v: 3.5})
	failure, vetoed := im.Failure()
	assert.True(t, vetoed, "above High must veto")
	assert.Equal(t, check.Failure("Test-TooHigh"), failure, "failure tag of the vetoing check")
	assert.Equal(t, 0.0, im.Grade(), "a vetoed candidate grades 0")
}

// TestSuite_ZeroWeightVeto verifies the pure-guard idiom: a weight-0
// check never moves the mean but still vetoes.
func TestSuite_ZeroWeightVeto(t *testing.T) {
	s, err := check.NewSuite[ctx]("guarded")
	require.NoError(t, err)
	require.NoError(t, s.Add(covariant(1)))
	require.NoError(t, s.Add(contravariant(0)))

	im, err := s.Impacts(ctx{v: 2})
	require.NoError(t, err)
	assert.Equal(t, 0.5, im.Grade(), "weight-0 check must not dilute the mean")

	im, _ = s.Impacts(ctx{v: 5})
	_, vetoed := im.Failure()
	assert.True(t, vetoed, "weight-0 check must still veto")
}

// TestSuite_WeightedMean verifies the grade is the weighted mean of the
// individual check grades.
func TestSuite_WeightedMean(t *testing.T) {
	s, err := check.NewSuite[ctx]("mean")
	require.NoError(t, err)
	require.NoError(t, s.Add(covariant(3)))     // grades 0.5 at v=2
	require.NoError(t, s.Add(contravariant(1))) // grades 0.5 at v=2

	im, err := s.Impacts(ctx{v: 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, im.Grade(), 1e-12, "both checks agree at the midpoint")

	im, _ = s.Impacts(ctx{v: 3})
	// covariant grades 1 (weight 3), contravariant grades 0 (weight 1).
	assert.InDelta(t, 0.75, im.Grade(), 1e-12, "weighted mean of 1 and 0")
}

// TestImpacts_Dump checks the dump carries the suite name and every
// check, with the veto marked.
func TestImpacts_Dump(t *testing.T) {
	s, err := check.NewSuite[ctx]("dumped")
	require.NoError(t, err)
	require.NoError(t, s.Add(covariant(1)))
	require.NoError(t, s.Add(contravariant(1)))

	im, err := s.Impacts(ctx{v: 0.5})
	require.NoError(t, err)
	dump := im.Dump()
	assert.True(t, strings.HasPrefix(dump, "dumped "), "dump starts with the suite name")
	assert.Contains(t, dump, "Cov:", "dump names every check")
	assert.Contains(t, dump, "!", "the vetoing check is marked")
	assert.Len(t, im.Results(), 2, "one result per check")
}

func BenchmarkSuite_Impacts(b *testing.B) {
	s, _ := check.NewSuite[ctx]("bench")
	for i := 0; i < 7; i++ {
		c := covariant(1)
		if i%2 == 0 {
			c = contravariant(0.5)
		}
		c.Name = c.Name + string(rune('A'+i))
		_ = s.Add(c)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Impacts(ctx{v: 2})
	}
}
