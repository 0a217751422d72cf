package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"coursecast/internal/deck"
	"coursecast/internal/jobs"
	"coursecast/internal/logging"
	"coursecast/internal/results"
	"coursecast/internal/script"
	"coursecast/internal/services"
	"coursecast/internal/services/openai"
)

func (o *Orchestrator) writeOutput(job *jobs.Job, data []byte) (string, error) {
	name, err := results.FileName(job.ID, job.Kind)
	if err != nil {
		return "", services.Wrap(services.ErrConsistency, "orchestrator", "write output", "resolve output name", err)
	}
	if _, err := o.files.WriteConverted(name, data); err != nil {
		return "", services.Wrap(services.ErrTool, "orchestrator", "write output", "write artifact", err)
	}
	return name, nil
}

func (o *Orchestrator) complete(ctx context.Context, prompt, operation string) (string, error) {
	text, err := o.llm.Complete(ctx, prompt)
	if err != nil {
		return "", services.Wrap(services.ErrProvider, "orchestrator", operation, "language model request", err)
	}
	return text, nil
}

func (o *Orchestrator) produceSummary(ctx context.Context, job *jobs.Job, material string) (string, error) {
	summary, err := o.complete(ctx, openai.SummaryPrompt(material), "summary")
	if err != nil {
		return "", err
	}
	return o.writeOutput(job, []byte(summary))
}

// quiz mirrors the JSON contract in the quiz prompt.
type quiz struct {
	Questions []quizQuestion `json:"questions"`
}

type quizQuestion struct {
	Question string            `json:"question"`
	Choices  map[string]string `json:"choices"`
	Answer   string            `json:"answer"`
}

func (o *Orchestrator) produceQuiz(ctx context.Context, job *jobs.Job, material string) (string, error) {
	raw, err := o.complete(ctx, openai.QuizPrompt(material), "quiz")
	if err != nil {
		return "", err
	}
	var parsed quiz
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		return "", services.Wrap(services.ErrProvider, "orchestrator", "quiz", "model returned invalid quiz json", err)
	}
	if len(parsed.Questions) == 0 {
		return "", services.Wrap(services.ErrProvider, "orchestrator", "quiz", "model returned no questions", nil)
	}
	for i, q := range parsed.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return "", services.Wrap(services.ErrProvider, "orchestrator", "quiz",
				fmt.Sprintf("question %d has no text", i+1), nil)
		}
		if _, ok := q.Choices[q.Answer]; !ok {
			return "", services.Wrap(services.ErrProvider, "orchestrator", "quiz",
				fmt.Sprintf("question %d answer %q is not among its choices", i+1, q.Answer), nil)
		}
	}
	normalized, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return "", services.Wrap(services.ErrConsistency, "orchestrator", "quiz", "encode quiz", err)
	}
	return o.writeOutput(job, normalized)
}

func (o *Orchestrator) produceNarration(ctx context.Context, job *jobs.Job, material string) (string, error) {
	text, err := o.complete(ctx, openai.NarrationPrompt(material), "narration")
	if err != nil {
		return "", err
	}
	audio, err := o.narrator.Narrate(ctx, text)
	if err != nil {
		return "", err
	}
	return o.writeOutput(job, audio)
}

func (o *Orchestrator) producePodcast(ctx context.Context, job *jobs.Job, material string) (string, error) {
	text, err := o.complete(ctx, openai.PodcastPrompt(material), "podcast")
	if err != nil {
		return "", err
	}
	lines := script.ParseDialogue(text)
	audio, err := o.narrator.Podcast(ctx, lines)
	if err != nil {
		return "", err
	}
	return o.writeOutput(job, audio)
}

func (o *Orchestrator) produceDeck(ctx context.Context, job *jobs.Job, material string) (string, error) {
	text, err := o.complete(ctx, openai.SlidesPrompt(material), "deck")
	if err != nil {
		return "", err
	}
	slides := script.ParseSlides(text)
	if len(slides) == 0 {
		return "", services.Wrap(services.ErrProvider, "orchestrator", "deck", "model returned no slides", nil)
	}

	// Illustrations are best effort. A slide whose image cannot be
	// generated falls back to a caption inside the deck.
	images := make(map[int][]byte)
	for i, slide := range slides {
		if o.images == nil || strings.TrimSpace(slide.Illustration) == "" {
			continue
		}
		img, err := o.images.Generate(ctx, slide.Illustration)
		if err != nil {
			if ctx.Err() != nil {
				return "", services.Wrap(services.ErrProvider, "orchestrator", "deck", "illustration canceled", err)
			}
			o.logger.Warn("slide illustration failed, using caption",
				logging.String("job_id", job.ID),
				logging.Int("slide", i+1),
				logging.Error(err))
			continue
		}
		images[i] = img
	}

	artifact, err := deck.Build(slides, images)
	if err != nil {
		return "", services.Wrap(services.ErrConsistency, "orchestrator", "deck", "write deck", err)
	}
	return o.writeOutput(job, artifact)
}

func (o *Orchestrator) produceVideo(ctx context.Context, job *jobs.Job, material string) (string, error) {
	if o.scenes == nil || o.assembler == nil || o.images == nil {
		return "", services.Wrap(services.ErrConfiguration, "orchestrator", "video", "video support is not configured", nil)
	}
	text, err := o.complete(ctx, openai.ScenesPrompt(material), "video")
	if err != nil {
		return "", err
	}
	scenes := script.ParseScenes(text)
	if len(scenes) == 0 {
		return "", services.Wrap(services.ErrProvider, "orchestrator", "video", "model returned no scenes", nil)
	}
	voice, err := o.narrator.SceneVoice()
	if err != nil {
		return "", err
	}

	if err := o.generateScenes(ctx, job, scenes, voice); err != nil {
		return "", err
	}

	name, err := results.FileName(job.ID, job.Kind)
	if err != nil {
		return "", services.Wrap(services.ErrConsistency, "orchestrator", "video", "resolve output name", err)
	}
	if err := o.assembler.Assemble(ctx, job.ID, o.files.ResolveConverted(name)); err != nil {
		return "", err
	}
	if err := o.scenes.RemoveJob(context.WithoutCancel(ctx), job.ID); err != nil {
		o.logger.Warn("scene asset cleanup failed",
			logging.String("job_id", job.ID), logging.Error(err))
	}
	return name, nil
}

// generateScenes synthesizes audio and renders an image for every scene,
// bounded by the scene worker limit. The first failure cancels the rest.
func (o *Orchestrator) generateScenes(ctx context.Context, job *jobs.Job, scenes []script.Scene, voice string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, o.opts.SceneWorkers)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	record := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for _, scene := range scenes {
		wg.Add(1)
		go func(scene script.Scene) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			audio, err := o.narrator.Speak(ctx, scene.Narration, voice)
			if err != nil {
				record(err)
				return
			}
			if err := o.scenes.PutAudio(ctx, job.ID, scene.Number, audio); err != nil {
				record(services.Wrap(services.ErrProvider, "orchestrator", "video", "store scene audio", err))
				return
			}

			img, err := o.images.Generate(ctx, scene.Illustration)
			if err != nil {
				record(services.Wrap(services.ErrProvider, "orchestrator", "video", "render scene illustration", err))
				return
			}
			if err := o.scenes.PutImage(ctx, job.ID, scene.Number, img); err != nil {
				record(services.Wrap(services.ErrProvider, "orchestrator", "video", "store scene image", err))
			}
		}(scene)
	}
	wg.Wait()
	return firstErr
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models sometimes add around JSON output.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
