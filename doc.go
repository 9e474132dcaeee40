// Package stave is the symbol-interpretation core of an optical music
// recognition pipeline: it turns raw candidate pixel regions ("glyphs")
// into verified interpretations and resolves the geometric conflicts
// between them.
//
// 🎼 What is stave?
//
//	A deterministic, thread-aware library that brings together:
//		• Compound building: merge weak neighbor glyphs around a seed and
//		  keep the merge only when the shape classifier scores it better
//		  than its parts
//		• Alter-sign repair: rebuild sharp signs from mis-segmented
//		  close stem pairs, with explicit rollback on failure
//		• Ledger scanning: walk virtual lines outward from each staff,
//		  each accepted line anchoring the next one
//		• Exclusion reduction: a per-system interpretation graph where
//		  overlapping candidates fight and at most one survives
//
// ✨ Why stave?
//
//   - Faithful geometry – every threshold is an interline fraction,
//     scaled to the sheet at hand
//   - Deterministic – identical inputs and classifier answers reproduce
//     identical decisions, ties included
//   - Isolated failures – one system crashing never takes down the page
//
// The module is organized as flat, leaf-first packages:
//
//	geom/      — rectangles, x-overlap, least-squares line fits
//	pix/       — binary pixel sources and bitmaps
//	scale/     — interline-relative units (Fraction, LineFraction)
//	check/     — weighted check suites with veto semantics
//	glyph/     — sections, glyphs, shapes, the nest registry
//	sig/       — interpretation graph + exclusion reduction
//	staff/     — staff lines, pitch positions, the ledger table
//	compound/  — seed-and-grow building + alter-sign repair
//	ledger/    — anchored virtual-line scanning
//	sheet/     — systems, YAML params, parallel page processing
//	telemetry/ — Prometheus metrics for pipeline runs
//	synth/     — synthetic fixtures for tests and examples
//
// Quick ASCII example of a ledger chain below a staff:
//
//	════════════
//	════════════   ← staff (bottom line is index 0)
//	════════════
//	   ────        ← ledger at index +1
//	    ───        ← ledger at index +2 (anchored on +1)
//
// A candidate at index +2 with no overlapping survivor at +1 is rejected,
// however good it looks on its own.
//
//	go get github.com/katalvlaran/stave
package stave
