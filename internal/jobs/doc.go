// Package jobs defines the conversion job model and its SQLite-backed store.
//
// The store is the only persistence mechanism in the system; a job is only
// ever written by its own conversion handler, so no cross-job locking is
// needed beyond SQLite's own serialization.
package jobs
