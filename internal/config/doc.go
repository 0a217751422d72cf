// Package config loads, normalizes, and validates the TOML configuration
// that drives the conversion pipeline.
package config
