// Package compound: options and sentinel errors for compound building
// and alter-sign repair.
package compound

import (
	"errors"

	"github.com/katalvlaran/stave/scale"
)

// Sentinel errors for builder and repairer construction.
var (
	// ErrNilNest indicates construction without a glyph registry.
	ErrNilNest = errors.New("compound: nest is nil")

	// ErrNilEvaluator indicates construction without a shape evaluator.
	ErrNilEvaluator = errors.New("compound: evaluator is nil")

	// ErrBadOptions indicates an option outside its valid range.
	ErrBadOptions = errors.New("compound: option out of range")
)

// Options bundles the tunable constants of compound building and
// alter-sign repair. Lengths are interline fractions; doubts are plain
// classifier-distance ceilings.
type Options struct {
	// BoxWiden is the margin added on every side of a seed's box when
	// looking for compound neighbors.
	BoxWiden scale.Fraction `yaml:"box_widen"`

	// MinPartDoubt is the doubt at or above which an already classified
	// glyph becomes suitable again as a compound part.
	MinPartDoubt float64 `yaml:"min_part_doubt"`

	// AlterMaxDoubt is the tight vote ceiling for rebuilt alter signs.
	AlterMaxDoubt float64 `yaml:"alter_max_doubt"`

	// MaxCloseStemDx is the horizontal center distance ceiling for a
	// close-stem pair.
	MaxCloseStemDx scale.Fraction `yaml:"max_close_stem_dx"`

	// MinCloseStemOverlap is the vertical overlap floor for a
	// close-stem pair.
	MinCloseStemOverlap scale.Fraction `yaml:"min_close_stem_overlap"`

	// MaxCloseStemLength is the height ceiling for a stem to count as a
	// possible alter-sign fragment.
	MaxCloseStemLength scale.Fraction `yaml:"max_close_stem_length"`

	// MaxNaturalOverlap bounds the moderate-overlap band handled by the
	// natural-sign branch.
	MaxNaturalOverlap scale.Fraction `yaml:"max_natural_overlap"`

	// MaxSharpNonOverlap is the tolerance on top/bottom edge alignment
	// for the sharp-sign check.
	MaxSharpNonOverlap scale.Fraction `yaml:"max_sharp_non_overlap"`
}

// DefaultOptions reports the production constants.
func DefaultOptions() Options {
	return Options{
		BoxWiden:            0.15,
		MinPartDoubt:        1.020,
		AlterMaxDoubt:       3,
		MaxCloseStemDx:      0.7,
		MinCloseStemOverlap: 0.5,
		MaxCloseStemLength:  3,
		MaxNaturalOverlap:   1.5,
		MaxSharpNonOverlap:  1,
	}
}

// Validate reports ErrBadOptions unless every option is positive and
// the overlap band is consistent.
func (o Options) Validate() error {
	switch {
	case o.BoxWiden <= 0,
		o.MinPartDoubt <= 0,
		o.AlterMaxDoubt <= 0,
		o.MaxCloseStemDx <= 0,
		o.MinCloseStemOverlap <= 0,
		o.MaxCloseStemLength <= 0,
		o.MaxNaturalOverlap <= 0,
		o.MaxSharpNonOverlap <= 0:
		return ErrBadOptions
	case o.MaxNaturalOverlap < o.MinCloseStemOverlap:
		return ErrBadOptions
	}

	return nil
}
