package glyph

import "image"

// Orientation tells how a section's runs are laid out.
type Orientation int

const (
	// Horizontal sections carry horizontal runs: Run.Pos is the row (y),
	// Run.Start the first column (x).
	Horizontal Orientation = iota

	// Vertical sections carry vertical runs: Run.Pos is the column (x),
	// Run.Start the first row (y).
	Vertical
)

// Run is one run of foreground pixels within a section.
type Run struct {
	// Pos is the cross coordinate of the run: y for horizontal runs,
	// x for vertical runs.
	Pos int

	// Start is the first coordinate along the run direction.
	Start int

	// Length is the pixel count of the run; always positive.
	Length int
}

// Section is an atomic run-length region. It is owned by at most one
// glyph at a time; sections physically shared by two adjacent partitions
// must be released before another partition re-derives glyphs from them.
//
// Ownership changes are not synchronized: the caller serializes boundary
// releases before any parallel scanning starts.
type Section struct {
	id     int
	orient Orientation
	runs   []Run
	bounds image.Rectangle
	weight int
	owner  int // owning glyph id, 0 when free
}

// NewSection validates the runs and builds a section.
func NewSection(id int, orient Orientation, runs []Run) (*Section, error) {
	if len(runs) == 0 {
		return nil, ErrNoRuns
	}

	s := &Section{id: id, orient: orient, runs: make([]Run, len(runs))}
	copy(s.runs, runs)

	for i, r := range s.runs {
		if r.Length <= 0 {
			return nil, ErrBadRun
		}

		var box image.Rectangle
		if orient == Horizontal {
			box = image.Rect(r.Start, r.Pos, r.Start+r.Length, r.Pos+1)
		} else {
			box = image.Rect(r.Pos, r.Start, r.Pos+1, r.Start+r.Length)
		}
		if i == 0 {
			s.bounds = box
		} else {
			s.bounds = s.bounds.Union(box)
		}
		s.weight += r.Length
	}

	return s, nil
}

// ID reports the section identifier.
func (s *Section) ID() int { return s.id }

// Orientation reports the run layout of the section.
func (s *Section) Orientation() Orientation { return s.orient }

// Bounds reports the bounding box of the section.
func (s *Section) Bounds() image.Rectangle { return s.bounds }

// Weight reports the foreground pixel count of the section.
func (s *Section) Weight() int { return s.weight }

// Owner reports the id of the owning glyph, or 0 when the section is free.
func (s *Section) Owner() int { return s.owner }

// Release clears the section's ownership so another partition may reuse
// it. Must happen before that partition re-derives glyphs.
func (s *Section) Release() { s.owner = 0 }

// EachPixel calls fn for every foreground pixel of the section.
func (s *Section) EachPixel(fn func(x, y int)) {
	for _, r := range s.runs {
		for k := 0; k < r.Length; k++ {
			if s.orient == Horizontal {
				fn(r.Start+k, r.Pos)
			} else {
				fn(r.Pos, r.Start+k)
			}
		}
	}
}
