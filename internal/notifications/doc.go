// Package notifications delivers job lifecycle events via ntfy.
//
// The default implementation publishes to the topic configured in
// config.toml and gracefully degrades to a no-op when no topic is set,
// so callers never need to branch on whether notifications are enabled.
package notifications
