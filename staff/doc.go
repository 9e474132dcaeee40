// Package staff models one staff as its two fitted boundary lines plus
// the per-index ledger reference table: a mapping from signed virtual
// line index (0 = the staff's own boundary, growing magnitude = farther
// away) to the ledgers accepted there. Index k-1's entries are the
// ordinate references for index k's scan, so the table is the chain that
// anchors every accepted ledger back to the staff.
//
// PitchPositionAt follows the usual convention: -4 on the top line,
// +4 on the bottom line, 2 per interline.
//
// Errors:
//
//   - ErrBadSpan, ErrNilLine, ErrZeroIndex.
package staff
