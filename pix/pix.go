package pix

import (
	"errors"
	"image"
	"image/color"
)

// ErrBadDims indicates a Bitmap was requested with non-positive width or height.
var ErrBadDims = errors.New("pix: bitmap dimensions must be positive")

// Source is read access to a binary pixel plane. Get reports true where
// there is foreground ink; coordinates outside [0,w)×[0,h) always read
// as background, so callers may probe around a box without clamping.
type Source interface {
	Dims() (w, h int)
	Get(x, y int) bool
}

// Bitmap is a dense, mutable Source.
type Bitmap struct {
	w, h int
	bits []bool
}

// NewBitmap allocates an all-background bitmap of the given size.
// Returns ErrBadDims unless both dimensions are positive.
func NewBitmap(w, h int) (*Bitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadDims
	}

	return &Bitmap{w: w, h: h, bits: make([]bool, w*h)}, nil
}

// Dims reports the bitmap size.
func (b *Bitmap) Dims() (int, int) {
	return b.w, b.h
}

// Get reports whether (x, y) holds ink. Out-of-bounds reads are background.
func (b *Bitmap) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}

	return b.bits[(y*b.w)+x]
}

// Set writes one pixel. Out-of-bounds writes are ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.bits[(y*b.w)+x] = on
}

// SetRect fills every pixel of r (clipped to the bitmap) with on.
func (b *Bitmap) SetRect(r image.Rectangle, on bool) {
	clipped := r.Intersect(image.Rect(0, 0, b.w, b.h))
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			b.bits[(y*b.w)+x] = on
		}
	}
}

// FromImage converts img to a Bitmap: a pixel is ink when its gray
// luminance is strictly below threshold. Scanned scores are dark ink on
// light paper, so a threshold around 128 suits most inputs.
func FromImage(img image.Image, threshold uint8) *Bitmap {
	bounds := img.Bounds()
	bmp := &Bitmap{
		w:    bounds.Dx(),
		h:    bounds.Dy(),
		bits: make([]bool, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if gray.Y < threshold {
				bmp.bits[((y-bounds.Min.Y)*bmp.w)+(x-bounds.Min.X)] = true
			}
		}
	}

	return bmp
}
