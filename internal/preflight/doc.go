// Package preflight checks the source and destination trees before a
// conversion run touches anything.
//
// A run that cannot read its source or write its destination would otherwise
// fail on the first file, possibly after creating directories. Checks report
// every problem at once so the user can fix them in one pass.
package preflight
