package sheet

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/stave/compound"
	"github.com/katalvlaran/stave/glyph"
	"github.com/katalvlaran/stave/ledger"
	"github.com/katalvlaran/stave/telemetry"
)

// Process runs the interpretation pipeline over every system of the
// sheet. Metrics may be nil to disable instrumentation.
//
// Phases:
//  0. Serial: release every section listed by the systems, so sections
//     physically shared by two adjacent systems carry no stale owner
//     when re-derivation starts. Doing this before any parallelism is
//     what prevents the ownership race between neighbor partitions.
//  1. Parallel: up to Workers systems at a time, each strictly
//     sequential inside (evaluation + compounds, alter repair, ledger
//     scan) because each virtual line consumes the previous line's
//     survivors. A panic in one system is recovered and reported; its
//     siblings are unaffected.
//
// There is no cancellation or timeout: the failure isolation unit is
// one system's processing.
func Process(sh *Sheet, eval glyph.Evaluator, params Params, metrics *telemetry.Metrics) (Report, error) {
	if sh == nil {
		return Report{}, ErrNilSheet
	}
	if eval == nil {
		return Report{}, ErrNilEvaluator
	}
	if len(sh.Systems) == 0 {
		return Report{}, ErrNoSystems
	}
	if err := params.Validate(); err != nil {
		return Report{}, err
	}

	runID := uuid.NewString()
	start := time.Now()
	log.Info().Str("run", runID).Int("systems", len(sh.Systems)).
		Int("workers", params.Workers).Msg("sheet processing started")

	// Phase 0: boundary-section release, serialized.
	for _, sys := range sh.Systems {
		for _, sec := range sys.Sections {
			sec.Release()
		}
	}

	// Phase 1: bounded fan-out, one goroutine per system.
	reports := make([]SystemReport, len(sh.Systems))
	sem := make(chan struct{}, params.Workers)
	var wg sync.WaitGroup
	for i, sys := range sh.Systems {
		wg.Add(1)
		go func(i int, sys *System) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			reports[i] = processSystem(sys, eval, sh, params, runID, metrics)
		}(i, sys)
	}
	wg.Wait()

	report := Report{RunID: runID, Systems: reports, Duration: time.Since(start)}
	for _, r := range reports {
		if r.Failed {
			report.Failures++
		}
	}
	log.Info().Str("run", runID).Int("failures", report.Failures).
		Dur("duration", report.Duration).Msg("sheet processing finished")

	return report, nil
}

// processSystem runs one system to completion, converting both
// construction errors and panics into a failed report.
func processSystem(sys *System, eval glyph.Evaluator, sh *Sheet, params Params, runID string, metrics *telemetry.Metrics) (rep SystemReport) {
	rep.SystemID = sys.ID
	start := time.Now()
	defer func() {
		rep.Duration = time.Since(start)
		if r := recover(); r != nil {
			rep.Failed = true
			rep.Err = fmt.Sprint(r)
			log.Error().Str("run", runID).Int("system", sys.ID).
				Interface("panic", r).Msg("system processing failed")
			metrics.SystemFailed()

			return
		}
		if rep.Failed {
			metrics.SystemFailed()

			return
		}
		metrics.SystemProcessed(rep.Duration)
	}()

	fail := func(err error) SystemReport {
		rep.Failed = true
		rep.Err = err.Error()
		log.Error().Str("run", runID).Int("system", sys.ID).Err(err).
			Msg("system processing aborted")

		return rep
	}

	// Classification and compound building.
	builder, err := compound.NewBuilder(sys.Nest, eval, sh.Scale, params.Compound)
	if err != nil {
		return fail(err)
	}
	rep.Evaluated, rep.Compounds = builder.InspectGlyphs(params.MaxDoubt)
	metrics.AddEvaluated(rep.Evaluated)
	metrics.AddCompounds(rep.Compounds)

	// Alter-sign repair on the classified population.
	repairer, err := compound.NewRepairer(sys.Nest, eval, sh.Scale, params.Compound)
	if err != nil {
		return fail(err)
	}
	rep.Repairs = repairer.Repair()
	metrics.AddRepairs(rep.Repairs)

	// Ledger scan, line by line outward from each staff.
	scanner, err := ledger.NewBuilder(sh.Scale, sys.Graph, sys.Staves, sys.Source, sys.Candidates, params.Ledger)
	if err != nil {
		return fail(err)
	}
	rep.Ledgers = scanner.BuildLedgers()
	rep.Deletions = scanner.Deletions()
	metrics.AddLedgers(rep.Ledgers)
	metrics.AddDeletions(rep.Deletions)

	log.Debug().Str("run", runID).Int("system", sys.ID).
		Int("evaluated", rep.Evaluated).Int("compounds", rep.Compounds).
		Int("repairs", rep.Repairs).Int("ledgers", rep.Ledgers).
		Msg("system processed")

	return rep
}
