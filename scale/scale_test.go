package scale

import (
	"errors"
	"math"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(0, 3); !errors.Is(err, ErrBadInterline) {
		t.Errorf("interline 0: err = %v; want ErrBadInterline", err)
	}
	if _, err := New(20, 0); !errors.Is(err, ErrBadLineThickness) {
		t.Errorf("thickness 0: err = %v; want ErrBadLineThickness", err)
	}
	s, err := New(20, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Interline() != 20 || s.LineThickness() != 3 {
		t.Errorf("metrics = %d/%d; want 20/3", s.Interline(), s.LineThickness())
	}
}

func TestConversions(t *testing.T) {
	s, err := New(20, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cases := []struct {
		f    Fraction
		want int
	}{
		{1, 20},
		{0.35, 7},
		{0.15, 3},
		{2.5, 50},
		{0.024, 0}, // rounds down to zero pixels
	}
	for _, c := range cases {
		if got := s.ToPixels(c.f); got != c.want {
			t.Errorf("ToPixels(%v) = %d; want %d", c.f, got, c.want)
		}
	}

	if got := s.ToPixelsLine(3); got != 12 {
		t.Errorf("ToPixelsLine(3) = %d; want 12", got)
	}
	if got := s.FracOf(30); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("FracOf(30) = %v; want 1.5", got)
	}
	if got := s.LineFracOf(6); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("LineFracOf(6) = %v; want 1.5", got)
	}
}

// Round-tripping a fraction through pixels loses at most half a pixel.
func TestRoundTrip(t *testing.T) {
	s, _ := New(16, 2)
	for _, f := range []Fraction{0.25, 0.5, 1, 1.75, 3} {
		px := s.ToPixels(f)
		back := s.FracOf(float64(px))
		if math.Abs(back-float64(f)) > 0.5/16 {
			t.Errorf("round trip %v -> %d -> %v drifted", f, px, back)
		}
	}
}
