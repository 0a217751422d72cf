// Package orchestrator drives conversion jobs through their lifecycle.
// It reads uploaded study material, calls the language, speech, and
// image providers for the requested conversion kind, writes the output
// artifact, and records every status transition in the job store. A
// failure at any stage marks the job failed with the provider's message
// and leaves no partial output reference behind.
package orchestrator
