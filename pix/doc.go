// Package pix abstracts the binary pixel plane that geometric checks
// probe: a Source answers "is there ink at (x, y)?", a Bitmap is the
// dense in-memory implementation, and FromImage adapts any image.Image
// by luminance thresholding.
//
// The convexity check of ledger grading reads single pixels just outside
// a candidate's bounds; segmentation layers hand the core whichever
// staff-line-free source they produced, behind this interface.
//
// What:
//
//   - Source: Dims + Get, out-of-bounds reads are background.
//   - Bitmap: dense Source with Set and SetRect for fixtures.
//   - FromImage: image.Image to Bitmap, ink = luminance below threshold.
//
// Errors:
//
//   - ErrBadDims: a Bitmap was requested with non-positive dimensions.
package pix
