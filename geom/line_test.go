package geom

import (
	"errors"
	"math"
	"testing"
)

const lineEps = 1e-9

// TestFit_ExactLine fits points that already lie on y = 3 + 0.5x and
// expects a perfect reconstruction with zero mean distance.
func TestFit_ExactLine(t *testing.T) {
	pts := []Pt{{0, 3}, {2, 4}, {4, 5}, {10, 8}}
	l, err := Fit(pts, nil)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if math.Abs(l.Slope()-0.5) > lineEps {
		t.Errorf("slope = %v; want 0.5", l.Slope())
	}
	if math.Abs(l.YAt(6)-6) > lineEps {
		t.Errorf("YAt(6) = %v; want 6", l.YAt(6))
	}
	if l.MeanDistance() > lineEps {
		t.Errorf("mean distance = %v; want 0", l.MeanDistance())
	}
}

// TestFit_Weighted checks that weights pull the fit toward heavy points:
// two clusters at y=0 and y=10 with weights 3:1 put the horizontal fit
// at the weighted mean 2.5.
func TestFit_Weighted(t *testing.T) {
	pts := []Pt{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	ws := []float64{3, 3, 1, 1}
	l, err := Fit(pts, ws)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if math.Abs(l.Slope()) > lineEps {
		t.Errorf("slope = %v; want 0", l.Slope())
	}
	if math.Abs(l.YAt(5)-2.5) > lineEps {
		t.Errorf("YAt(5) = %v; want 2.5", l.YAt(5))
	}
}

// TestFit_MeanDistance uses a zigzag around y=1 where every residual is
// exactly 1.
func TestFit_MeanDistance(t *testing.T) {
	pts := []Pt{{0, 0}, {0, 2}, {4, 0}, {4, 2}, {8, 0}, {8, 2}}
	l, err := Fit(pts, nil)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if math.Abs(l.MeanDistance()-1) > lineEps {
		t.Errorf("mean distance = %v; want 1", l.MeanDistance())
	}
}

// TestFit_DegenerateAbscissa: one shared x column falls back to a
// horizontal line through the mean ordinate.
func TestFit_DegenerateAbscissa(t *testing.T) {
	pts := []Pt{{5, 0}, {5, 4}}
	l, err := Fit(pts, nil)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if l.Slope() != 0 {
		t.Errorf("slope = %v; want 0", l.Slope())
	}
	if math.Abs(l.YAt(100)-2) > lineEps {
		t.Errorf("YAt = %v; want 2", l.YAt(100))
	}
}

func TestFit_Errors(t *testing.T) {
	if _, err := Fit(nil, nil); !errors.Is(err, ErrNoPoints) {
		t.Errorf("empty sample: err = %v; want ErrNoPoints", err)
	}
	if _, err := Fit([]Pt{{0, 0}}, []float64{1, 2}); !errors.Is(err, ErrBadWeights) {
		t.Errorf("length mismatch: err = %v; want ErrBadWeights", err)
	}
	if _, err := Fit([]Pt{{0, 0}, {1, 1}}, []float64{0, 0}); !errors.Is(err, ErrBadWeights) {
		t.Errorf("zero total weight: err = %v; want ErrBadWeights", err)
	}
}

func TestSegmentYAt(t *testing.T) {
	p, q := Pt{0, 0}, Pt{10, 5}
	if got := SegmentYAt(p, q, 20); math.Abs(got-10) > lineEps {
		t.Errorf("extrapolation = %v; want 10", got)
	}
	if got := SegmentYAt(p, q, 4); math.Abs(got-2) > lineEps {
		t.Errorf("interpolation = %v; want 2", got)
	}
	// Vertical segment degrades to the mean ordinate.
	if got := SegmentYAt(Pt{3, 2}, Pt{3, 6}, 99); math.Abs(got-4) > lineEps {
		t.Errorf("vertical = %v; want 4", got)
	}
}
