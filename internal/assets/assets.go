// Package assets stores per-scene audio and image artifacts between the
// generation and assembly stages of a video job. Two backends exist, a
// local directory tree and an S3 compatible object store.
package assets

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Key layout mirrors the scene numbering of the script, zero padded so
// lexical order matches scene order.
const (
	audioKeyFormat = "%s/audioScene%04d.mp3"
	imageKeyFormat = "%s/imageScene%04d.png"
)

// Store persists scene assets keyed by job and scene number.
type Store interface {
	PutAudio(ctx context.Context, jobID string, scene int, data []byte) error
	PutImage(ctx context.Context, jobID string, scene int, data []byte) error
	GetAudio(ctx context.Context, jobID string, scene int) ([]byte, error)
	GetImage(ctx context.Context, jobID string, scene int) ([]byte, error)
	// SceneNumbers lists the scenes present for a job, split into
	// audio and image sets, each sorted ascending.
	SceneNumbers(ctx context.Context, jobID string) (audio []int, images []int, err error)
	// RemoveJob deletes every asset belonging to a job.
	RemoveJob(ctx context.Context, jobID string) error
}

func audioKey(jobID string, scene int) string {
	return fmt.Sprintf(audioKeyFormat, jobID, scene)
}

func imageKey(jobID string, scene int) string {
	return fmt.Sprintf(imageKeyFormat, jobID, scene)
}

// parseSceneKey extracts the scene number from a key's base name, or
// returns false when the name does not match either asset pattern.
func parseSceneKey(name string) (scene int, audio bool, ok bool) {
	switch {
	case strings.HasPrefix(name, "audioScene") && strings.HasSuffix(name, ".mp3"):
		if _, err := fmt.Sscanf(name, "audioScene%04d.mp3", &scene); err == nil {
			return scene, true, true
		}
	case strings.HasPrefix(name, "imageScene") && strings.HasSuffix(name, ".png"):
		if _, err := fmt.Sscanf(name, "imageScene%04d.png", &scene); err == nil {
			return scene, false, true
		}
	}
	return 0, false, false
}

func sortScenes(scenes []int) []int {
	sort.Ints(scenes)
	return scenes
}
