package ledger

import (
	"math"

	"github.com/katalvlaran/stave/check"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/pix"
	"github.com/katalvlaran/stave/scale"
)

// stickContext is one candidate stick graded against one target
// ordinate on a virtual line.
type stickContext struct {
	stick   *glyph.Glyph
	yTarget float64
}

// newSuite assembles one ledger check suite. Short and long candidates
// currently share the same check set; the split is kept because the
// length-based selection threshold is live and the long suite is the
// place where length-specific checks would land.
func newSuite(name string, sc scale.Scale, src pix.Source, opts Options) (*check.Suite[stickContext], error) {
	s, err := check.NewSuite[stickContext](name, check.WithMinThreshold(opts.MinThreshold))
	if err != nil {
		return nil, err
	}

	checks := []check.Check[stickContext]{
		{
			Name:        "MinTh.",
			Description: "stick is thick enough",
			Low:         0,
			High:        float64(opts.MinThicknessHigh),
			Covariant:   true,
			Weight:      0.5,
			Failure:     TooThin,
			Value: func(c stickContext) float64 {
				return sc.FracOf(c.stick.MeanThickness())
			},
		},
		{
			// Weight 0: a pure veto guard against merged-in beams.
			Name:        "MaxTh.",
			Description: "stick is not too thick",
			Low:         float64(opts.MaxThicknessLow),
			High:        float64(opts.MaxThicknessHigh),
			Covariant:   false,
			Weight:      0,
			Failure:     TooThick,
			Value: func(c stickContext) float64 {
				return sc.LineFracOf(c.stick.MeanThickness())
			},
		},
		{
			Name:        "Length",
			Description: "stick is long enough",
			Low:         float64(opts.MinLengthLow),
			High:        float64(opts.MinLengthHigh),
			Covariant:   true,
			Weight:      4,
			Failure:     TooShort,
			Value: func(c stickContext) float64 {
				return sc.FracOf(float64(c.stick.Length()))
			},
		},
		{
			Name:        "Convex",
			Description: "stick ends point out of surrounding ink",
			Low:         opts.ConvexityLow,
			High:        convexityHigh,
			Covariant:   true,
			Weight:      2,
			Failure:     TooConcave,
			Value: func(c stickContext) float64 {
				return convexityOf(src, c.stick)
			},
		},
		{
			Name:        "Straight",
			Description: "stick is rather straight",
			Low:         0,
			High:        float64(opts.MaxDistanceHigh),
			Covariant:   false,
			Weight:      1,
			Failure:     TooBended,
			Value: func(c stickContext) float64 {
				return sc.FracOf(c.stick.MeanDistance())
			},
		},
		{
			Name:        "LPitch",
			Description: "left ordinate is close to the target",
			Low:         0,
			High:        float64(opts.MarginY),
			Covariant:   false,
			Weight:      0.5,
			Failure:     TooShifted,
			Value: func(c stickContext) float64 {
				return sc.FracOf(math.Abs(c.stick.StartPoint().Y - c.yTarget))
			},
		},
		{
			Name:        "RPitch",
			Description: "right ordinate is close to the target",
			Low:         0,
			High:        float64(opts.MarginY),
			Covariant:   false,
			Weight:      0.5,
			Failure:     TooShifted,
			Value: func(c stickContext) float64 {
				return sc.FracOf(math.Abs(c.stick.StopPoint().Y - c.yTarget))
			},
		},
	}

	for _, c := range checks {
		if err = s.Add(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// convexityOf counts the stick ends that slightly point out of the
// surrounding ink. On each horizontal end of the stick's bounds, the
// pixels just above the top corner and just below the bottom corner are
// probed; the end counts when both probes are background.
//
//	X                                 X
//	+---------------------------------+
//	|                                 |
//	+---------------------------------+
//	X                                 X
func convexityOf(src pix.Source, stick *glyph.Glyph) float64 {
	box := stick.Bounds()
	convexities := 0.0
	for _, x := range [2]int{box.Min.X, box.Max.X - 1} {
		topFore := src.Get(x, box.Min.Y-1)
		bottomFore := src.Get(x, box.Max.Y)
		if !topFore && !bottomFore {
			convexities++
		}
	}

	return convexities
}
