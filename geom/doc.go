// Package geom provides the pixel-space geometry shared by glyph, staff
// and ledger processing: abscissa overlap of boxes, symmetric rectangle
// expansion, and weighted least-squares line fitting.
//
// What:
//
//   - XOverlap / XEmbraces: abscissa relations between boxes and points.
//   - Expand: grow a rectangle by a margin on each side.
//   - Line: a fitted y = intercept + slope·x with YAt and MeanDistance.
//   - SegmentYAt: ordinate of the line through two points at a given x.
//
// Why:
//
//   - Sticks (ledger candidates, stems) are graded against fitted lines.
//   - Conflict detection between accepted candidates is pure x-overlap.
//
// Complexity:
//
//   - Fit: O(n) over the sample points, Memory: O(1).
//   - Everything else: O(1).
//
// Errors:
//
//   - ErrNoPoints: a fit was requested over an empty sample.
//   - ErrBadWeights: weight count mismatch or non-positive total weight.
package geom
