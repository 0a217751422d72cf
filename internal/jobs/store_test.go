package jobs_test

import (
	"context"
	"testing"

	"coursecast/internal/jobs"
	"coursecast/internal/testsupport"
)

func TestNewJobDefaults(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	job, err := store.NewJob(context.Background(), []string{"a.txt", "b.txt"}, jobs.KindSummary)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if job.ID == "" {
		t.Fatal("expected generated id")
	}
	if job.Status != jobs.StatusUploaded {
		t.Fatalf("status = %q, want uploaded", job.Status)
	}
	if len(job.SourceFiles) != 2 {
		t.Fatalf("source files = %v", job.SourceFiles)
	}
	if job.OutputFile != "" {
		t.Fatal("output file must be unset on creation")
	}
	if job.CreatedAt.IsZero() {
		t.Fatal("created timestamp missing")
	}
}

func TestNewJobRejectsUnknownKind(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	if _, err := store.NewJob(context.Background(), []string{"a.txt"}, jobs.Kind("hologram")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestNewJobRequiresSources(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	if _, err := store.NewJob(context.Background(), nil, jobs.KindSummary); err == nil {
		t.Fatal("expected error for empty sources")
	}
}

func TestUpdatePersistsStatusTransitions(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	job := testsupport.NewJob(t, store, jobs.KindPodcast)

	job.Status = jobs.StatusProcessing
	if err := store.Update(ctx, job); err != nil {
		t.Fatalf("Update processing: %v", err)
	}

	reloaded, err := store.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if reloaded.Status != jobs.StatusProcessing {
		t.Fatalf("status = %q, want processing", reloaded.Status)
	}

	reloaded.Status = jobs.StatusCompleted
	reloaded.OutputFile = job.ID + ".mp3"
	if err := store.Update(ctx, reloaded); err != nil {
		t.Fatalf("Update completed: %v", err)
	}

	final, err := store.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID final: %v", err)
	}
	if final.Status != jobs.StatusCompleted || final.OutputFile != job.ID+".mp3" {
		t.Fatalf("unexpected final record: %+v", final)
	}
}

func TestSetFailedClearsOutput(t *testing.T) {
	job := &jobs.Job{Status: jobs.StatusProcessing, OutputFile: "partial.mp4"}
	job.SetFailed("tool exited 1")
	if job.Status != jobs.StatusFailed {
		t.Fatalf("status = %q", job.Status)
	}
	if job.OutputFile != "" {
		t.Fatal("failed job must not reference an artifact")
	}
	if job.ErrorMessage != "tool exited 1" {
		t.Fatalf("error message = %q", job.ErrorMessage)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	job, err := store.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if job != nil {
		t.Fatalf("expected nil for missing job, got %+v", job)
	}
}

func TestNextUploadedOrdersByCreation(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	first := testsupport.NewJob(t, store, jobs.KindSummary)
	second := testsupport.NewJob(t, store, jobs.KindQuiz)

	next, err := store.NextUploaded(ctx)
	if err != nil {
		t.Fatalf("NextUploaded: %v", err)
	}
	if next == nil || next.ID != first.ID {
		t.Fatalf("expected oldest job %s, got %+v", first.ID, next)
	}

	next.Status = jobs.StatusProcessing
	if err := store.Update(ctx, next); err != nil {
		t.Fatalf("Update: %v", err)
	}

	next, err = store.NextUploaded(ctx)
	if err != nil {
		t.Fatalf("NextUploaded second: %v", err)
	}
	if next == nil || next.ID != second.ID {
		t.Fatalf("expected second job, got %+v", next)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	testsupport.NewJob(t, store, jobs.KindSummary)
	failed := testsupport.NewJob(t, store, jobs.KindVideo)
	failed.SetFailed("boom")
	if err := store.Update(ctx, failed); err != nil {
		t.Fatalf("Update: %v", err)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(all))
	}

	failedOnly, err := store.List(ctx, jobs.StatusFailed)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(failedOnly) != 1 || failedOnly[0].ID != failed.ID {
		t.Fatalf("unexpected failed list: %+v", failedOnly)
	}
}

func TestStats(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	testsupport.NewJob(t, store, jobs.KindSummary)
	testsupport.NewJob(t, store, jobs.KindSummary)

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats[jobs.StatusUploaded] != 2 {
		t.Fatalf("uploaded count = %d", stats[jobs.StatusUploaded])
	}
}

func TestParseKind(t *testing.T) {
	if kind, ok := jobs.ParseKind("  Video "); !ok || kind != jobs.KindVideo {
		t.Fatalf("ParseKind video = %q, %v", kind, ok)
	}
	if _, ok := jobs.ParseKind("vhs"); ok {
		t.Fatal("expected unknown kind to fail")
	}
}
