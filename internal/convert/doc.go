// Package convert runs a conversion over a source tree.
//
// A run has two phases. The scan phase lists every .cng file before anything
// is written. The process phase then walks that list in order: each file is
// decoded into the mirrored destination directory, optionally removed from
// the source, and, when merging is enabled, an odd right page is joined with
// its preceding even left page into a single spread.
//
// Runs are sequential. A destination lock rejects a second run against the
// same destination while one is in progress.
package convert
