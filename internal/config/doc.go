// Package config loads, normalizes, and validates cng2jpg configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the CNG2JPG_LOG_LEVEL environment
// fallback. Command-line flags are layered on top by the CLI; this package only
// owns the file-backed defaults.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
