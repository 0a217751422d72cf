package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDirStoreRoundTrip(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	ctx := context.Background()

	if err := store.PutAudio(ctx, "job-1", 1, []byte("audio-1")); err != nil {
		t.Fatalf("PutAudio: %v", err)
	}
	if err := store.PutImage(ctx, "job-1", 1, []byte("image-1")); err != nil {
		t.Fatalf("PutImage: %v", err)
	}

	audio, err := store.GetAudio(ctx, "job-1", 1)
	if err != nil {
		t.Fatalf("GetAudio: %v", err)
	}
	if string(audio) != "audio-1" {
		t.Errorf("audio = %q", audio)
	}
	image, err := store.GetImage(ctx, "job-1", 1)
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}
	if string(image) != "image-1" {
		t.Errorf("image = %q", image)
	}
}

func TestDirStoreKeysAreZeroPadded(t *testing.T) {
	root := t.TempDir()
	store, err := NewDirStore(root)
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	if err := store.PutAudio(context.Background(), "job-1", 7, []byte("x")); err != nil {
		t.Fatalf("PutAudio: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "job-1", "audioScene0007.mp3")); err != nil {
		t.Errorf("expected zero-padded file name: %v", err)
	}
}

func TestDirStoreSceneNumbersSortedAndSplit(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	ctx := context.Background()
	for _, scene := range []int{3, 1, 2} {
		if err := store.PutAudio(ctx, "job-1", scene, []byte("a")); err != nil {
			t.Fatalf("PutAudio: %v", err)
		}
	}
	if err := store.PutImage(ctx, "job-1", 2, []byte("i")); err != nil {
		t.Fatalf("PutImage: %v", err)
	}

	audio, images, err := store.SceneNumbers(ctx, "job-1")
	if err != nil {
		t.Fatalf("SceneNumbers: %v", err)
	}
	if len(audio) != 3 || audio[0] != 1 || audio[1] != 2 || audio[2] != 3 {
		t.Errorf("audio scenes = %v", audio)
	}
	if len(images) != 1 || images[0] != 2 {
		t.Errorf("image scenes = %v", images)
	}
}

func TestDirStoreSceneNumbersUnknownJob(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	audio, images, err := store.SceneNumbers(context.Background(), "missing")
	if err != nil {
		t.Fatalf("SceneNumbers: %v", err)
	}
	if audio != nil || images != nil {
		t.Errorf("expected empty results, got %v / %v", audio, images)
	}
}

func TestDirStoreRemoveJob(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	ctx := context.Background()
	if err := store.PutAudio(ctx, "job-1", 1, []byte("a")); err != nil {
		t.Fatalf("PutAudio: %v", err)
	}
	if err := store.RemoveJob(ctx, "job-1"); err != nil {
		t.Fatalf("RemoveJob: %v", err)
	}
	if _, err := store.GetAudio(ctx, "job-1", 1); err == nil {
		t.Error("expected read after removal to fail")
	}
}

func TestParseSceneKey(t *testing.T) {
	cases := []struct {
		name  string
		scene int
		audio bool
		ok    bool
	}{
		{"audioScene0001.mp3", 1, true, true},
		{"imageScene0042.png", 42, false, true},
		{"audioScene0001.png", 0, false, false},
		{"transcript.txt", 0, false, false},
	}
	for _, tc := range cases {
		scene, audio, ok := parseSceneKey(tc.name)
		if scene != tc.scene || audio != tc.audio || ok != tc.ok {
			t.Errorf("parseSceneKey(%q) = (%d, %v, %v), want (%d, %v, %v)",
				tc.name, scene, audio, ok, tc.scene, tc.audio, tc.ok)
		}
	}
}
