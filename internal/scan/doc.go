// Package scan enumerates the .cng files of a source tree ahead of conversion.
package scan
