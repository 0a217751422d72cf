package testsupport

import (
	"context"
	"testing"

	"coursecast/internal/config"
	"coursecast/internal/jobs"
)

// MustOpenStore opens a jobs.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *jobs.Store {
	t.Helper()

	store, err := jobs.Open(cfg)
	if err != nil {
		t.Fatalf("jobs.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewJob creates an uploaded job for tests using the provided store.
func NewJob(t testing.TB, store *jobs.Store, kind jobs.Kind, sources ...string) *jobs.Job {
	t.Helper()

	if len(sources) == 0 {
		sources = []string{"source.txt"}
	}
	job, err := store.NewJob(context.Background(), sources, kind)
	if err != nil {
		t.Fatalf("store.NewJob: %v", err)
	}
	return job
}
