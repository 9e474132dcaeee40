package geom

import "image"

// Pt is a point with subpixel precision, used for stick midpoints and
// fitted-line samples where integer pixels are too coarse.
type Pt struct {
	X, Y float64
}

// XOverlap reports the length of the common abscissa span of a and b.
// The result is negative when the boxes are disjoint in x; callers test
// XOverlap(a, b) > 0 for a true overlap.
func XOverlap(a, b image.Rectangle) int {
	left := max(a.Min.X, b.Min.X)
	right := min(a.Max.X, b.Max.X)

	return right - left
}

// XEmbraces reports whether abscissa x falls within the horizontal span
// of r (left edge inclusive, right edge exclusive).
func XEmbraces(r image.Rectangle, x float64) bool {
	return x >= float64(r.Min.X) && x < float64(r.Max.X)
}

// Expand returns r grown by dx on the left and right sides and by dy on
// the top and bottom sides. Negative margins shrink the rectangle.
func Expand(r image.Rectangle, dx, dy int) image.Rectangle {
	return image.Rect(r.Min.X-dx, r.Min.Y-dy, r.Max.X+dx, r.Max.Y+dy)
}

// Center reports the integer center of r, matching the usual
// half-open-box convention (x + w/2, y + h/2).
func Center(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+(r.Dx()/2), r.Min.Y+(r.Dy()/2))
}

// ContainsPt reports whether the subpixel point p lies inside r
// (minimum edges inclusive, maximum edges exclusive).
func ContainsPt(r image.Rectangle, p Pt) bool {
	return p.X >= float64(r.Min.X) && p.X < float64(r.Max.X) &&
		p.Y >= float64(r.Min.Y) && p.Y < float64(r.Max.Y)
}
