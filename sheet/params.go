package sheet

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stave/compound"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/ledger"
)

// Params bundles every tunable of a sheet run: the compound and ledger
// option sets, the evaluation ceiling, and the parallelism bound.
type Params struct {
	Compound compound.Options `yaml:"compound"`
	Ledger   ledger.Options   `yaml:"ledger"`

	// MaxDoubt is the vote ceiling of the symbol evaluation and
	// compound passes.
	MaxDoubt float64 `yaml:"max_doubt"`

	// Workers bounds the number of systems processed concurrently.
	Workers int `yaml:"workers"`
}

// DefaultParams reports the production defaults.
func DefaultParams() Params {
	return Params{
		Compound: compound.DefaultOptions(),
		Ledger:   ledger.DefaultOptions(),
		MaxDoubt: glyph.SymbolMaxDoubt,
		Workers:  runtime.NumCPU(),
	}
}

// Validate checks the run-level fields and delegates to the option sets.
func (p Params) Validate() error {
	if p.Workers <= 0 {
		return ErrBadWorkers
	}
	if p.MaxDoubt <= 0 {
		return ErrBadMaxDoubt
	}
	if err := p.Compound.Validate(); err != nil {
		return err
	}

	return p.Ledger.Validate()
}

// LoadParams reads a YAML file over the defaults and validates the
// result, so a partial file only overrides what it names.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("sheet: read params: %w", err)
	}
	if err = yaml.Unmarshal(data, &params); err != nil {
		return Params{}, fmt.Errorf("sheet: parse params: %w", err)
	}
	if err = params.Validate(); err != nil {
		return Params{}, err
	}

	return params, nil
}
