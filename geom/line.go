package geom

import (
	"errors"
	"math"
)

// Sentinel errors for line fitting.
var (
	// ErrNoPoints indicates a fit was requested over an empty sample.
	ErrNoPoints = errors.New("geom: cannot fit a line through zero points")
	// ErrBadWeights indicates the weight slice does not match the sample
	// or the total weight is not strictly positive.
	ErrBadWeights = errors.New("geom: weights must match points and sum to a positive value")
)

// Line is a least-squares fitted line y = intercept + slope·x.
// The zero value is the x axis; obtain meaningful instances via Fit.
type Line struct {
	slope     float64
	intercept float64
	meanDist  float64
}

// Fit computes the weighted least-squares line through pts.
// A nil weights slice gives every point weight 1; otherwise weights must
// be the same length as pts with a strictly positive sum.
//
// Degenerate samples (all points sharing one abscissa) fit a horizontal
// line through the weighted mean ordinate, which is the useful answer
// for the near-horizontal sticks this package serves.
//
// Complexity: O(n), two passes (moments, then residuals).
func Fit(pts []Pt, weights []float64) (Line, error) {
	// 1) Validate the sample.
	if len(pts) == 0 {
		return Line{}, ErrNoPoints
	}
	if weights != nil && len(weights) != len(pts) {
		return Line{}, ErrBadWeights
	}

	// 2) Accumulate weighted moments.
	var sw, sx, sy, sxx, sxy float64
	for i, p := range pts {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		sw += w
		sx += w * p.X
		sy += w * p.Y
		sxx += w * p.X * p.X
		sxy += w * p.X * p.Y
	}
	if sw <= 0 {
		return Line{}, ErrBadWeights
	}

	// 3) Solve for slope and intercept, falling back to a horizontal
	//    line when the abscissa variance vanishes.
	l := Line{}
	den := (sw * sxx) - (sx * sx)
	if den > 1e-9 {
		l.slope = ((sw * sxy) - (sx * sy)) / den
	}
	l.intercept = (sy - (l.slope * sx)) / sw

	// 4) Mean absolute residual, weighted the same way.
	var dist float64
	for i, p := range pts {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		dist += w * math.Abs(p.Y-l.YAt(p.X))
	}
	l.meanDist = dist / sw

	return l, nil
}

// YAt reports the fitted ordinate at abscissa x.
func (l Line) YAt(x float64) float64 {
	return l.intercept + (l.slope * x)
}

// Slope reports the fitted slope (dy/dx).
func (l Line) Slope() float64 {
	return l.slope
}

// MeanDistance reports the weighted mean absolute distance of the fit
// sample to the fitted line, the straightness measure used by ledger
// grading.
func (l Line) MeanDistance() float64 {
	return l.meanDist
}

// SegmentYAt reports the ordinate at abscissa x of the line through p
// and q, extrapolating beyond the segment. When p and q share one
// abscissa the mean of their ordinates is returned.
func SegmentYAt(p, q Pt, x float64) float64 {
	dx := q.X - p.X
	if math.Abs(dx) < 1e-9 {
		return (p.Y + q.Y) / 2
	}

	return p.Y + ((q.Y-p.Y)/dx)*(x-p.X)
}
