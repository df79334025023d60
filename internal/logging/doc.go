// Package logging assembles structured slog loggers and formatting helpers used
// across cng2jpg.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes small attribute helpers so conversion code tags log
// lines with the run ID, component, and file paths consistently. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
