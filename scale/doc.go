// Package scale expresses lengths in sheet-relative units. Every tunable
// distance of glyph and ledger processing is declared as a Fraction of
// the interline (the vertical distance between two staff lines) or as a
// LineFraction of the mean staff-line thickness, then converted to pixels
// against the Scale measured on the sheet at hand. This keeps one set of
// constants valid across scan resolutions.
//
// What:
//
//   - Fraction: interline-relative length.
//   - LineFraction: line-thickness-relative length.
//   - Scale: pixel conversions both ways (ToPixels/ToPixelsLine,
//     FracOf/LineFracOf).
//
// Errors:
//
//   - ErrBadInterline, ErrBadLineThickness: non-positive sheet metrics.
package scale
