package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirStore keeps scene assets under root/<jobID>/ on the local
// filesystem.
type DirStore struct {
	root string
}

// NewDirStore creates the root directory if needed.
func NewDirStore(root string) (*DirStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("assets: create root %s: %w", root, err)
	}
	return &DirStore{root: root}, nil
}

func (s *DirStore) put(key string, data []byte) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("assets: create dir for %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("assets: write %s: %w", key, err)
	}
	return nil
}

func (s *DirStore) get(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", key, err)
	}
	return data, nil
}

func (s *DirStore) PutAudio(_ context.Context, jobID string, scene int, data []byte) error {
	return s.put(audioKey(jobID, scene), data)
}

func (s *DirStore) PutImage(_ context.Context, jobID string, scene int, data []byte) error {
	return s.put(imageKey(jobID, scene), data)
}

func (s *DirStore) GetAudio(_ context.Context, jobID string, scene int) ([]byte, error) {
	return s.get(audioKey(jobID, scene))
}

func (s *DirStore) GetImage(_ context.Context, jobID string, scene int) ([]byte, error) {
	return s.get(imageKey(jobID, scene))
}

func (s *DirStore) SceneNumbers(_ context.Context, jobID string) ([]int, []int, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, jobID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("assets: list job %s: %w", jobID, err)
	}
	var audio, images []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		scene, isAudio, ok := parseSceneKey(entry.Name())
		if !ok {
			continue
		}
		if isAudio {
			audio = append(audio, scene)
		} else {
			images = append(images, scene)
		}
	}
	return sortScenes(audio), sortScenes(images), nil
}

func (s *DirStore) RemoveJob(_ context.Context, jobID string) error {
	if err := os.RemoveAll(filepath.Join(s.root, jobID)); err != nil {
		return fmt.Errorf("assets: remove job %s: %w", jobID, err)
	}
	return nil
}
