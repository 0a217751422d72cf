package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coursecast/internal/assets"
	"coursecast/internal/illustration"
	"coursecast/internal/jobs"
	"coursecast/internal/logging"
	"coursecast/internal/narration"
	"coursecast/internal/notifications"
	"coursecast/internal/services"
	"coursecast/internal/storage"
)

// LLM produces text completions for conversion prompts.
type LLM interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// VideoAssembler renders a job's stored scene assets into an MP4 file.
type VideoAssembler interface {
	Assemble(ctx context.Context, jobID, outputPath string) error
}

// Options tunes orchestrator behavior.
type Options struct {
	// SceneWorkers bounds concurrent per-scene generation for video
	// jobs. Values below 1 are treated as 1.
	SceneWorkers int
}

// Orchestrator converts uploaded study material into the requested
// output artifact.
type Orchestrator struct {
	store     *jobs.Store
	files     *storage.Store
	llm       LLM
	narrator  *narration.Narrator
	images    illustration.Generator
	scenes    assets.Store
	assembler VideoAssembler
	notifier  notifications.Service
	opts      Options
	logger    *slog.Logger
}

// New wires an Orchestrator from its collaborators. The images, scenes,
// and assembler arguments may be nil when video and deck illustration
// support is not configured; jobs needing them then fail cleanly.
func New(
	store *jobs.Store,
	files *storage.Store,
	llm LLM,
	narrator *narration.Narrator,
	images illustration.Generator,
	scenes assets.Store,
	videoAssembler VideoAssembler,
	notifier notifications.Service,
	opts Options,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.SceneWorkers < 1 {
		opts.SceneWorkers = 1
	}
	return &Orchestrator{
		store:     store,
		files:     files,
		llm:       llm,
		narrator:  narrator,
		images:    images,
		scenes:    scenes,
		assembler: videoAssembler,
		notifier:  notifier,
		opts:      opts,
		logger:    logger,
	}
}

// Convert runs one job to a terminal state. The job must still be in
// the uploaded state.
func (o *Orchestrator) Convert(ctx context.Context, jobID string) error {
	job, err := o.store.GetByID(ctx, jobID)
	if err != nil {
		return services.Wrap(services.ErrProvider, "orchestrator", "convert", "load job", err)
	}
	if job == nil {
		return services.Wrap(services.ErrInput, "orchestrator", "convert", fmt.Sprintf("job %s not found", jobID), nil)
	}
	if job.Status != jobs.StatusUploaded {
		return services.Wrap(services.ErrInput, "orchestrator", "convert",
			fmt.Sprintf("job %s is %s, not %s", jobID, job.Status, jobs.StatusUploaded), nil)
	}

	job.Status = jobs.StatusProcessing
	if err := o.store.Update(ctx, job); err != nil {
		return services.Wrap(services.ErrProvider, "orchestrator", "convert", "mark job processing", err)
	}
	return o.process(ctx, job)
}

// ConvertAsync starts the conversion in the background, detached from
// the caller's context. Errors are logged, not returned.
func (o *Orchestrator) ConvertAsync(jobID string) {
	go func() {
		if err := o.Convert(context.Background(), jobID); err != nil {
			o.logger.Error("background conversion failed",
				logging.String("job_id", jobID),
				logging.Error(err))
		}
	}()
}

// Run polls for uploaded jobs until the context is canceled, converting
// them oldest first.
func (o *Orchestrator) Run(ctx context.Context, pollInterval time.Duration) error {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	o.logger.Info("worker started", logging.Duration("poll_interval", pollInterval))
	for {
		job, err := o.store.NextUploaded(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			o.logger.Error("poll for jobs failed", logging.Error(err))
		}
		if job != nil {
			job.Status = jobs.StatusProcessing
			if err := o.store.Update(ctx, job); err != nil {
				o.logger.Error("mark job processing failed",
					logging.String("job_id", job.ID), logging.Error(err))
			} else if err := o.process(ctx, job); err != nil {
				o.logger.Error("conversion failed",
					logging.String("job_id", job.ID), logging.Error(err))
			}
			// Look for the next job immediately.
			continue
		}
		select {
		case <-ctx.Done():
			o.logger.Info("worker stopped")
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// process runs a job already marked processing to a terminal state. A
// handler panic is converted into a failed job rather than taking the
// worker down.
func (o *Orchestrator) process(ctx context.Context, job *jobs.Job) (err error) {
	started := time.Now()
	o.logger.Info("conversion started",
		logging.String("job_id", job.ID),
		logging.String("kind", string(job.Kind)),
		logging.Int("sources", len(job.SourceFiles)))

	defer func() {
		if r := recover(); r != nil {
			err = services.Wrap(services.ErrConsistency, "orchestrator", "process",
				fmt.Sprintf("conversion panicked: %v", r), nil)
			o.fail(job, err)
		}
	}()

	output, err := o.produce(ctx, job)
	if err != nil {
		o.fail(job, err)
		return err
	}

	job.Status = jobs.StatusCompleted
	job.OutputFile = output
	job.ErrorMessage = ""
	if err := o.store.Update(context.WithoutCancel(ctx), job); err != nil {
		return services.Wrap(services.ErrProvider, "orchestrator", "process", "mark job completed", err)
	}
	o.logger.Info("conversion completed",
		logging.String("job_id", job.ID),
		logging.String("output", output),
		logging.Duration("elapsed", time.Since(started)))
	o.notify(func(n notifications.Service) error {
		return n.NotifyJobCompleted(context.WithoutCancel(ctx), job)
	})
	return nil
}

// fail records the terminal failure. The persisted message is the
// human-readable portion of the error, without the sentinel prefix.
func (o *Orchestrator) fail(job *jobs.Job, cause error) {
	job.SetFailed(services.Message(cause))
	if err := o.store.Update(context.Background(), job); err != nil {
		o.logger.Error("mark job failed did not persist",
			logging.String("job_id", job.ID), logging.Error(err))
	}
	o.logger.Warn("conversion failed",
		logging.String("job_id", job.ID),
		logging.String("kind", string(job.Kind)),
		logging.String("reason", job.ErrorMessage))
	o.notify(func(n notifications.Service) error {
		return n.NotifyJobFailed(context.Background(), job)
	})
}

// notify delivers a notification when a notifier is configured. Delivery
// problems are logged and never affect job state.
func (o *Orchestrator) notify(send func(notifications.Service) error) {
	if o.notifier == nil {
		return
	}
	if err := send(o.notifier); err != nil {
		o.logger.Warn("notification delivery failed", logging.Error(err))
	}
}

// produce dispatches to the handler for the job's kind and returns the
// output file name.
func (o *Orchestrator) produce(ctx context.Context, job *jobs.Job) (string, error) {
	material, err := o.files.ReadAll(job.SourceFiles)
	if err != nil {
		return "", services.Wrap(services.ErrInput, "orchestrator", "read sources", "read uploaded material", err)
	}

	switch job.Kind {
	case jobs.KindSummary:
		return o.produceSummary(ctx, job, material)
	case jobs.KindQuiz:
		return o.produceQuiz(ctx, job, material)
	case jobs.KindNarration:
		return o.produceNarration(ctx, job, material)
	case jobs.KindPodcast:
		return o.producePodcast(ctx, job, material)
	case jobs.KindDeck:
		return o.produceDeck(ctx, job, material)
	case jobs.KindVideo:
		return o.produceVideo(ctx, job, material)
	default:
		return "", services.Wrap(services.ErrInput, "orchestrator", "produce",
			fmt.Sprintf("unsupported conversion kind %q", job.Kind), nil)
	}
}
