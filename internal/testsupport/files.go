package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"coursecast/internal/config"
)

// WriteUpload stores file content under the config's upload directory and
// returns the stored filename reference.
func WriteUpload(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(cfg.Paths.UploadDir, 0o755); err != nil {
		t.Fatalf("mkdir upload dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.Paths.UploadDir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write upload %s: %v", name, err)
	}
	return name
}
