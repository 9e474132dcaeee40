// Package ledger retrieves ledger lines for one system by anchored
// virtual-line scanning: starting from each staff, every virtual line
// one interline farther out is searched for acceptable stick
// candidates, the previous line's survivors serving as the ordinate
// references for the next one. A side of a staff stops at the first
// line that yields nothing; no gap is ever skipped, so every accepted
// ledger is chained back to its staff.
//
// Each candidate on a line is graded by a weighted check suite
// (thickness bounds, minimum length, end convexity, straightness, and
// both end ordinates against the target line), selected by candidate
// length. Accepted candidates become interpretations in the system's
// graph; abscissa overlaps between them turn into OVERLAP exclusions
// and a strict reduction keeps only the better graded of each pair.
// Survivors land in the staff's per-index reference table.
//
// A candidate with no horizontally overlapping survivor one step closer
// to the staff is an orphan and is never accepted, regardless of its
// own grade.
//
// What:
//
//   - Builder: per-system scanner over filtered candidate sticks.
//   - BuildLedgers: the per-staff, per-side state machine.
//   - TargetFor: best index and target ordinate for a free candidate,
//     for inspection tooling.
//   - Options / DefaultOptions: every threshold as an interline or
//     line-thickness fraction.
//
// Complexity:
//
//   - lookupLine: O(c) over candidates plus O(a log a) for the accepted
//     set; the rightward conflict scan is O(a) amortized under the
//     sorted-overlap assumption.
//
// Errors:
//
//   - ErrNilGraph, ErrNilSource, ErrNoStaves, ErrBadOptions.
package ledger
