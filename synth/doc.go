// Package synth builds deterministic fixtures for tests and examples:
// horizontal sticks, vertical stems, straight or sloped staves, bitmap
// rendering of glyph ink, and a table-driven evaluator whose votes are
// keyed by section signature (so a compound's vote can be prepared from
// its parts before the compound exists).
//
// Fixture construction panics on misuse instead of returning errors:
// a broken fixture is a broken test, not a runtime condition.
package synth
