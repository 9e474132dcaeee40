package pix

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewBitmap_BadDims(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewBitmap(dims[0], dims[1]); !errors.Is(err, ErrBadDims) {
			t.Errorf("NewBitmap(%d,%d): err = %v; want ErrBadDims", dims[0], dims[1], err)
		}
	}
}

func TestBitmap_GetSet(t *testing.T) {
	b, err := NewBitmap(8, 4)
	if err != nil {
		t.Fatalf("NewBitmap failed: %v", err)
	}

	b.Set(3, 2, true)
	if !b.Get(3, 2) {
		t.Error("pixel (3,2) must be ink after Set")
	}
	if b.Get(2, 3) {
		t.Error("untouched pixel must be background")
	}

	// Out-of-bounds reads are background, writes are ignored.
	if b.Get(-1, 0) || b.Get(8, 0) || b.Get(0, 4) {
		t.Error("out-of-bounds reads must be background")
	}
	b.Set(100, 100, true) // must not panic
}

func TestBitmap_SetRect(t *testing.T) {
	b, err := NewBitmap(10, 10)
	if err != nil {
		t.Fatalf("NewBitmap failed: %v", err)
	}

	// Rect partially off the plane is clipped, not an error.
	b.SetRect(image.Rect(8, 8, 14, 14), true)
	if !b.Get(9, 9) {
		t.Error("inside clipped fill must be ink")
	}
	if b.Get(7, 7) {
		t.Error("outside fill must stay background")
	}
}

func TestFromImage_Threshold(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	img.Pix = []uint8{0, 100, 128, 255}

	b := FromImage(img, 128)
	want := []bool{true, true, false, false} // strictly below threshold
	for x, w := range want {
		if got := b.Get(x, 0); got != w {
			t.Errorf("pixel %d: ink = %v; want %v", x, got, w)
		}
	}
}

// FromImage must honor non-zero image origins.
func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(5, 5, 7, 6))
	img.SetGray(5, 5, color.Gray{Y: 255})
	img.SetGray(6, 5, color.Gray{Y: 0})
	b := FromImage(img, 128)

	w, h := b.Dims()
	if w != 2 || h != 1 {
		t.Fatalf("dims = %dx%d; want 2x1", w, h)
	}
	if b.Get(0, 0) {
		t.Error("pixel (0,0) maps to source (5,5), which is white")
	}
	if !b.Get(1, 0) {
		t.Error("pixel (1,0) maps to source (6,5), which is ink")
	}
}
