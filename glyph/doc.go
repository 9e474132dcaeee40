// Package glyph models candidate pixel regions and their classification
// state: runs, atomic sections with single-owner semantics, glyphs with
// shape/doubt assignments, and the per-partition Nest registry.
//
// What:
//
//   - Run / Section: run-length regions, owned by at most one glyph;
//     Release clears ownership for partition-boundary handoff.
//   - Glyph: bounding box, pixel weight, shape + doubt, manual flag,
//     forbidden shapes, and fitted-line stick geometry for horizontal
//     candidates (Length, MeanThickness, Start/Stop/Midpoint,
//     MeanDistance).
//   - Shape: the classification vocabulary, with WellKnown and the
//     reclassifiable subset {DOT, SLUR, CLUTTER}.
//   - Evaluation / Evaluator: the classifier boundary. Vote reports
//     (shape, doubt) within a doubt ceiling, or false; it never errors.
//   - Nest: id allocation, registration with section claiming,
//     signature-based Original lookup, compound assembly, purging.
//
// Invariants:
//
//   - A set shape always carries a doubt; lower doubt is better.
//   - Manual shapes are never overwritten by SetShape or ClearShape;
//     the attempt is logged as an anomaly and ignored.
//   - A glyph is active while every member section points back to it;
//     registering a compound deactivates its parts.
//
// Complexity:
//
//   - Assemble: O(s·r) over sections and runs; line fit is computed
//     lazily once, O(weight).
//   - Nest operations: O(1) amortized; snapshots O(n log n) for sorting.
//
// Errors:
//
//   - ErrNilGlyph, ErrNoSections, ErrNoRuns, ErrBadRun.
package glyph
