package results

import (
	"testing"

	"coursecast/internal/jobs"
)

func TestForCoversEveryKind(t *testing.T) {
	for _, kind := range jobs.AllKinds() {
		artifact, err := For(kind)
		if err != nil {
			t.Errorf("For(%s): %v", kind, err)
			continue
		}
		if artifact.Suffix == "" || artifact.ContentType == "" {
			t.Errorf("For(%s) = %+v, want suffix and content type", kind, artifact)
		}
	}
}

func TestForSelectedKinds(t *testing.T) {
	cases := []struct {
		kind        jobs.Kind
		suffix      string
		contentType string
	}{
		{jobs.KindNarration, ".mp3", "audio/mpeg"},
		{jobs.KindPodcast, ".mp3", "audio/mpeg"},
		{jobs.KindVideo, ".mp4", "video/mp4"},
		{jobs.KindQuiz, ".json", "application/json"},
	}
	for _, tc := range cases {
		artifact, err := For(tc.kind)
		if err != nil {
			t.Fatalf("For(%s): %v", tc.kind, err)
		}
		if artifact.Suffix != tc.suffix || artifact.ContentType != tc.contentType {
			t.Errorf("For(%s) = %+v", tc.kind, artifact)
		}
	}
}

func TestForUnknownKind(t *testing.T) {
	if _, err := For(jobs.Kind("hologram")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestFileName(t *testing.T) {
	name, err := FileName("abc-123", jobs.KindDeck)
	if err != nil {
		t.Fatalf("FileName: %v", err)
	}
	if name != "abc-123.pptx" {
		t.Errorf("name = %q", name)
	}
}
