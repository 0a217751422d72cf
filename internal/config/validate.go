package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSpeech(); err != nil {
		return err
	}
	if err := c.validateScenes(); err != nil {
		return err
	}
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.UploadDir == "" {
		return errors.New("paths.upload_dir must be set")
	}
	if c.Paths.ConvertedDir == "" {
		return errors.New("paths.converted_dir must be set")
	}
	return nil
}

func (c *Config) validateSpeech() error {
	if len(c.Speech.PodcastVoices) < 2 {
		return errors.New("speech.podcast_voices needs at least two voices")
	}
	if len(c.Speech.NarrationVoices) < 1 {
		return errors.New("speech.narration_voices needs at least one voice")
	}
	if c.Speech.MaxChars < 100 {
		return fmt.Errorf("speech.max_chars %d is too small to chunk sentences", c.Speech.MaxChars)
	}
	return nil
}

func (c *Config) validateScenes() error {
	switch c.Scenes.Backend {
	case "local":
		if c.Scenes.Dir == "" {
			return errors.New("scene_storage.dir must be set for the local backend")
		}
	case "s3":
		if strings.TrimSpace(c.Scenes.Endpoint) == "" {
			return errors.New("scene_storage.endpoint must be set for the s3 backend")
		}
		if strings.TrimSpace(c.Scenes.Bucket) == "" {
			return errors.New("scene_storage.bucket must be set for the s3 backend")
		}
	default:
		return fmt.Errorf("scene_storage.backend must be \"local\" or \"s3\", got %q", c.Scenes.Backend)
	}
	return nil
}

func (c *Config) validateFFmpeg() error {
	if c.FFmpeg.Width <= 0 || c.FFmpeg.Height <= 0 {
		return errors.New("ffmpeg.width and ffmpeg.height must be positive")
	}
	if c.FFmpeg.FrameRate <= 0 {
		return errors.New("ffmpeg.frame_rate must be positive")
	}
	return nil
}
