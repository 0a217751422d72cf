package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coursecast/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	base := t.TempDir()
	cfg.Paths.UploadDir = filepath.Join(base, "uploads")
	cfg.Paths.ConvertedDir = filepath.Join(base, "converted")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Scenes.Dir = filepath.Join(base, "scenes")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.UploadDir); err != nil {
		t.Fatalf("upload dir not created: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.LLM.Model == "" {
		t.Fatal("expected default llm model")
	}
	if cfg.Scenes.Backend != "local" {
		t.Fatalf("expected local scene backend, got %q", cfg.Scenes.Backend)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
upload_dir = "` + filepath.Join(dir, "up") + `"
converted_dir = "` + filepath.Join(dir, "conv") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[llm]
model = "gpt-4o"

[ffmpeg]
width = 1920
height = 1080
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Fatalf("llm model = %q", cfg.LLM.Model)
	}
	if cfg.FFmpeg.Width != 1920 || cfg.FFmpeg.Height != 1080 {
		t.Fatalf("resolution = %dx%d", cfg.FFmpeg.Width, cfg.FFmpeg.Height)
	}
	// Untouched sections keep defaults.
	if cfg.Speech.MaxChars != 2500 {
		t.Fatalf("speech max chars = %d", cfg.Speech.MaxChars)
	}
}

func TestValidateRejectsBadSceneBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.UploadDir = t.TempDir()
	cfg.Paths.ConvertedDir = t.TempDir()
	cfg.Scenes.Backend = "ftp"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "scene_storage.backend") {
		t.Fatalf("expected backend validation error, got %v", err)
	}
}

func TestValidateRequiresS3Endpoint(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.UploadDir = t.TempDir()
	cfg.Paths.ConvertedDir = t.TempDir()
	cfg.Scenes.Backend = "s3"
	cfg.Scenes.Endpoint = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for s3 backend without endpoint")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error writing over existing config")
	}
}
