// Package storage manages the upload and converted-output directories.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store resolves stored source files and converted artifacts on local disk.
type Store struct {
	uploadDir    string
	convertedDir string
}

// New constructs a Store rooted at the given directories, creating them if
// needed.
func New(uploadDir, convertedDir string) (*Store, error) {
	for _, dir := range []string{uploadDir, convertedDir} {
		if strings.TrimSpace(dir) == "" {
			return nil, fmt.Errorf("storage directory must be set")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return &Store{uploadDir: uploadDir, convertedDir: convertedDir}, nil
}

// Save copies an uploaded source into the upload directory under an opaque
// stored name, preserving the original extension, and returns the stored
// filename reference.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	ext := filepath.Ext(originalName)
	stored := uuid.NewString() + ext

	out, err := os.Create(filepath.Join(s.uploadDir, stored))
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write stored file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close stored file: %w", err)
	}
	return stored, nil
}

// Resolve returns the absolute path of a stored source file.
func (s *Store) Resolve(stored string) string {
	return filepath.Join(s.uploadDir, stored)
}

// ResolveConverted returns the absolute path of a converted artifact.
func (s *Store) ResolveConverted(name string) string {
	return filepath.Join(s.convertedDir, name)
}

// ReadAll reads every stored source file and joins them with file banners so
// the language model sees which material came from which upload.
func (s *Store) ReadAll(stored []string) (string, error) {
	var sb strings.Builder
	for i, name := range stored {
		data, err := os.ReadFile(s.Resolve(name))
		if err != nil {
			return "", fmt.Errorf("read source %s: %w", name, err)
		}
		if len(stored) > 1 {
			fmt.Fprintf(&sb, "===== FILE: %s =====\n\n", name)
		}
		sb.Write(data)
		if i < len(stored)-1 {
			sb.WriteString("\n\n")
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// WriteConverted writes a converted artifact and returns its filename.
func (s *Store) WriteConverted(name string, data []byte) (string, error) {
	path := s.ResolveConverted(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write converted %s: %w", name, err)
	}
	return name, nil
}
