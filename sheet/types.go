// Package sheet: sheet/system model, run reports and sentinel errors.
package sheet

import (
	"errors"
	"image"
	"time"

	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/pix"
	"github.com/katalvlaran/stave/scale"
	"github.com/katalvlaran/stave/sig"
	"github.com/katalvlaran/stave/staff"
)

// Sentinel errors for sheet processing.
var (
	// ErrNilSheet indicates Process was called without a sheet.
	ErrNilSheet = errors.New("sheet: sheet is nil")

	// ErrNilEvaluator indicates Process was called without an evaluator.
	ErrNilEvaluator = errors.New("sheet: evaluator is nil")

	// ErrNoSystems indicates a sheet without any system to process.
	ErrNoSystems = errors.New("sheet: at least one system is required")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("sheet: workers must be positive")

	// ErrBadMaxDoubt indicates a non-positive evaluation ceiling.
	ErrBadMaxDoubt = errors.New("sheet: max doubt must be positive")
)

// System is one spatial partition of a sheet. It owns its candidate
// population, its nest and its interpretation graph; systems share no
// mutable state apart from boundary sections, which Process releases
// serially before any parallel work starts.
type System struct {
	// ID identifies the system within its sheet.
	ID int

	// Bounds is the system's region on the page.
	Bounds image.Rectangle

	// Nest is the system's glyph registry, populated by segmentation.
	Nest *glyph.Nest

	// Graph is the system's interpretation graph.
	Graph *sig.Graph

	// Staves are the system's staves, top to bottom.
	Staves []*staff.Staff

	// Source is the system's binary pixel plane.
	Source pix.Source

	// Candidates are the raw ledger candidate sticks supplied by
	// segmentation.
	Candidates []*glyph.Glyph

	// Sections are the atomic sections this system re-derives glyphs
	// from; those straddling a neighbor system must be released first.
	Sections []*glyph.Section
}

// Sheet is one scanned page: its measured scale and its systems.
type Sheet struct {
	Scale   scale.Scale
	Systems []*System
}

// SystemReport is the outcome of one system's processing.
type SystemReport struct {
	SystemID  int
	Evaluated int
	Compounds int
	Repairs   int
	Ledgers   int
	Deletions int
	Failed    bool
	Err       string
	Duration  time.Duration
}

// Report is the outcome of one sheet run.
type Report struct {
	RunID    string
	Systems  []SystemReport
	Failures int
	Duration time.Duration
}
