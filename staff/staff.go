package staff

import (
	"errors"
	"image"
	"math"
	"sort"

	"github.com/katalvlaran/stave/geom"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/sig"
)

// Sentinel errors for staff construction and ledger bookkeeping.
var (
	// ErrBadSpan indicates a line whose right end is not right of its left end.
	ErrBadSpan = errors.New("staff: line right end must be right of left end")

	// ErrNilLine indicates a staff built without both boundary lines.
	ErrNilLine = errors.New("staff: both boundary lines are required")

	// ErrZeroIndex indicates a ledger recorded at virtual index 0, which
	// is the staff boundary line itself.
	ErrZeroIndex = errors.New("staff: ledger index must not be zero")
)

// Line is one fitted staff boundary line over [left.X, right.X].
type Line struct {
	left, right geom.Pt
}

// NewLine builds a boundary line from its two end points.
func NewLine(left, right geom.Pt) (*Line, error) {
	if right.X <= left.X {
		return nil, ErrBadSpan
	}

	return &Line{left: left, right: right}, nil
}

// YAt reports the line ordinate at abscissa x, extrapolating beyond the
// ends.
func (l *Line) YAt(x float64) float64 {
	return geom.SegmentYAt(l.left, l.right, x)
}

// Bounds reports the bounding box of the line, at least one pixel tall.
func (l *Line) Bounds() image.Rectangle {
	minY := int(math.Floor(math.Min(l.left.Y, l.right.Y)))
	maxY := int(math.Ceil(math.Max(l.left.Y, l.right.Y)))
	if maxY == minY {
		maxY++
	}

	return image.Rect(int(math.Floor(l.left.X)), minY, int(math.Ceil(l.right.X)), maxY)
}

// Ledger is one accepted ledger interpretation recorded on a staff:
// the graph handle plus the interpreted glyph.
type Ledger struct {
	Inter sig.InterID
	Glyph *glyph.Glyph
}

// Staff is one five-line staff, reduced to its two boundary lines, with
// the per-index ledger reference table. The table maps a signed virtual
// line index (-1 = first line above, +1 = first below, 0 never used) to
// the accepted ledgers at that index; it is the chained ordinate
// reference consumed by the next farther index. Within one scan pass it
// is append-only, apart from reduction removals at the index being
// built.
type Staff struct {
	id      int
	top     *Line
	bottom  *Line
	ledgers map[int][]Ledger
}

// New builds a staff from its boundary lines.
func New(id int, top, bottom *Line) (*Staff, error) {
	if top == nil || bottom == nil {
		return nil, ErrNilLine
	}

	return &Staff{
		id:      id,
		top:     top,
		bottom:  bottom,
		ledgers: make(map[int][]Ledger),
	}, nil
}

// ID reports the staff identifier.
func (s *Staff) ID() int { return s.id }

// Top reports the first (highest) staff line.
func (s *Staff) Top() *Line { return s.top }

// Bottom reports the last (lowest) staff line.
func (s *Staff) Bottom() *Line { return s.bottom }

// PitchPositionAt reports the pitch position of p relative to this
// staff: -4 on the top line, +4 on the bottom line, 0 on the middle
// line, growing by 2 per interline.
func (s *Staff) PitchPositionAt(p geom.Pt) float64 {
	yTop := s.top.YAt(p.X)
	yBot := s.bottom.YAt(p.X)

	return 8 * (p.Y - ((yTop + yBot) / 2)) / (yBot - yTop)
}

// AddLedger records an accepted ledger at the given virtual index,
// keeping the index's entries sorted by abscissa.
func (s *Staff) AddLedger(index int, l Ledger) error {
	if index == 0 {
		return ErrZeroIndex
	}

	entries := append(s.ledgers[index], l)
	sort.Slice(entries, func(i, j int) bool {
		bi, bj := entries[i].Glyph.Bounds().Min.X, entries[j].Glyph.Bounds().Min.X
		if bi != bj {
			return bi < bj
		}

		return entries[i].Inter < entries[j].Inter
	})
	s.ledgers[index] = entries

	return nil
}

// LedgersAt reports a copy of the accepted ledgers at the given index,
// sorted by abscissa. Nil when the index holds nothing.
func (s *Staff) LedgersAt(index int) []Ledger {
	entries := s.ledgers[index]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Ledger, len(entries))
	copy(out, entries)

	return out
}

// RemoveLedger drops the entry with the given handle from an index,
// reporting whether it was present. Used when exclusion reduction
// deletes an interpretation that was already recorded.
func (s *Staff) RemoveLedger(index int, id sig.InterID) bool {
	entries := s.ledgers[index]
	for i, e := range entries {
		if e.Inter == id {
			s.ledgers[index] = append(entries[:i], entries[i+1:]...)

			return true
		}
	}

	return false
}
