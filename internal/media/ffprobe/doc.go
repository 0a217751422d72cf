// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties
//   - Format: container-level metadata
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns a parsed Result
//   - Duration: shortcut that returns the container duration in seconds
package ffprobe
