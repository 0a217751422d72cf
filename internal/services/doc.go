// Package services holds the shared error taxonomy used by conversion
// handlers and the provider clients beneath them.
package services
