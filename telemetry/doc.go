// Package telemetry exposes the Prometheus instruments of sheet
// processing: per-run counters for systems, glyphs, compounds, repairs,
// ledgers and exclusion deletions, plus a per-system duration
// histogram. All methods are safe on a nil *Metrics, which disables
// recording entirely.
package telemetry
