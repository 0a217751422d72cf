package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"coursecast/internal/assets"
	"coursecast/internal/config"
	"coursecast/internal/illustration"
	"coursecast/internal/jobs"
	"coursecast/internal/logging"
	"coursecast/internal/narration"
	"coursecast/internal/notifications"
	"coursecast/internal/orchestrator"
	"coursecast/internal/services/dalle"
	"coursecast/internal/services/openai"
	"coursecast/internal/services/polly"
	"coursecast/internal/storage"

	assemblerpkg "coursecast/internal/media/assembler"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) openStore() (*jobs.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return jobs.Open(cfg)
}

func (c *commandContext) openFiles() (*storage.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.Paths.UploadDir, cfg.Paths.ConvertedDir)
}

func (c *commandContext) newLogger(toFile bool) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if toFile {
		return logging.NewForApp(cfg)
	}
	return logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
}

// buildOrchestrator wires the full conversion pipeline from configuration.
func (c *commandContext) buildOrchestrator(ctx context.Context, store *jobs.Store, logger *slog.Logger) (*orchestrator.Orchestrator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	files, err := c.openFiles()
	if err != nil {
		return nil, err
	}

	llm := openai.NewClient(openai.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		TimeoutSeconds: cfg.LLM.TimeoutSeconds,
	})

	speech, err := polly.NewClient(polly.Config{
		Region: cfg.Speech.Region,
		Engine: cfg.Speech.Engine,
	})
	if err != nil {
		return nil, fmt.Errorf("configure speech provider: %w", err)
	}
	narrator := narration.New(speech, narration.Options{
		PodcastVoices:   cfg.Speech.PodcastVoices,
		NarrationVoices: cfg.Speech.NarrationVoices,
		MaxChars:        cfg.Speech.MaxChars,
	}, rand.New(rand.NewSource(time.Now().UnixNano())))

	placeholder := illustration.NewPlaceholder(cfg.FFmpeg.Width, cfg.FFmpeg.Height)
	var images illustration.Generator = placeholder
	if strings.TrimSpace(cfg.Images.APIKey) != "" {
		images = illustration.WithFallback(dalle.NewClient(dalle.Config{
			APIKey:  cfg.Images.APIKey,
			BaseURL: cfg.Images.BaseURL,
			Model:   cfg.Images.Model,
			Size:    cfg.Images.Size,
			Quality: cfg.Images.Quality,
		}), placeholder)
	}

	scenes, err := c.sceneStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	videoAssembler := assemblerpkg.New(scenes, assemblerpkg.Options{
		FFmpegBin:  cfg.FFmpeg.FFmpegBin,
		FFprobeBin: cfg.FFmpeg.FFprobeBin,
		Width:      cfg.FFmpeg.Width,
		Height:     cfg.FFmpeg.Height,
		FrameRate:  cfg.FFmpeg.FrameRate,
	}, logging.NewComponentLogger(logger, "assembler"))

	return orchestrator.New(store, files, llm, narrator, images, scenes, videoAssembler,
		notifications.NewService(cfg),
		orchestrator.Options{SceneWorkers: cfg.Workflow.Workers},
		logging.NewComponentLogger(logger, "orchestrator")), nil
}

func (c *commandContext) sceneStore(ctx context.Context, cfg *config.Config) (assets.Store, error) {
	switch cfg.Scenes.Backend {
	case "s3":
		store, err := assets.NewObjectStore(ctx, assets.ObjectStoreConfig{
			Endpoint:  cfg.Scenes.Endpoint,
			Bucket:    cfg.Scenes.Bucket,
			AccessKey: cfg.Scenes.AccessKey,
			SecretKey: cfg.Scenes.SecretKey,
			UseSSL:    cfg.Scenes.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("connect scene storage: %w", err)
		}
		return store, nil
	default:
		store, err := assets.NewDirStore(cfg.Scenes.Dir)
		if err != nil {
			return nil, fmt.Errorf("open scene storage: %w", err)
		}
		return store, nil
	}
}
