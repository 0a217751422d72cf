// Package logging configures the process-wide slog logger and provides
// typed attribute helpers shared by every component.
package logging
