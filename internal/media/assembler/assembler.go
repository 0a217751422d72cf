// Package assembler turns a job's per-scene audio and image assets into
// a single MP4. Assets are pulled from the scene store into a scratch
// directory, each image is held on screen for the duration of its scene
// audio, and ffmpeg concatenates and muxes the result.
package assembler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"coursecast/internal/assets"
	"coursecast/internal/logging"
	"coursecast/internal/media/ffprobe"
	"coursecast/internal/services"
)

// Options configures the output geometry and tool binaries.
type Options struct {
	FFmpegBin  string
	FFprobeBin string
	Width      int
	Height     int
	FrameRate  int
}

// Assembler builds scene videos from stored assets.
type Assembler struct {
	store  assets.Store
	opts   Options
	logger *slog.Logger
}

// New constructs an Assembler. A nil logger is replaced with a no-op one.
func New(store assets.Store, opts Options, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.FFmpegBin == "" {
		opts.FFmpegBin = "ffmpeg"
	}
	if opts.FFprobeBin == "" {
		opts.FFprobeBin = "ffprobe"
	}
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 1
	}
	return &Assembler{store: store, opts: opts, logger: logger}
}

// Assemble renders the video for a job into outputPath. It fails before
// invoking any tool when the stored audio and image scene sets disagree.
func (a *Assembler) Assemble(ctx context.Context, jobID, outputPath string) error {
	audio, images, err := a.store.SceneNumbers(ctx, jobID)
	if err != nil {
		return services.Wrap(services.ErrProvider, "assembler", "list scenes", "list stored scene assets", err)
	}
	if err := checkScenes(audio, images); err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "coursecast-assemble-")
	if err != nil {
		return services.Wrap(services.ErrTool, "assembler", "scratch dir", "create scratch directory", err)
	}
	defer os.RemoveAll(workDir)

	a.logger.Info("assembling video",
		logging.String("job_id", jobID),
		logging.Int("scenes", len(audio)),
		logging.String("work_dir", workDir))

	durations, err := a.pullScenes(ctx, jobID, audio, workDir)
	if err != nil {
		return err
	}
	if err := a.concatAudio(ctx, audio, workDir); err != nil {
		return err
	}
	if err := a.writeImageManifest(audio, durations, workDir); err != nil {
		return err
	}
	return a.mux(ctx, workDir, outputPath)
}

// checkScenes verifies the two asset sets cover the same non-empty,
// contiguous scene range.
func checkScenes(audio, images []int) error {
	if len(audio) == 0 {
		return services.Wrap(services.ErrConsistency, "assembler", "check scenes", "no scene audio stored", nil)
	}
	if len(audio) != len(images) {
		return services.Wrap(services.ErrConsistency, "assembler", "check scenes",
			fmt.Sprintf("audio scenes (%d) and image scenes (%d) disagree", len(audio), len(images)), nil)
	}
	for i := range audio {
		if audio[i] != images[i] {
			return services.Wrap(services.ErrConsistency, "assembler", "check scenes",
				fmt.Sprintf("scene %d has mismatched assets", audio[i]), nil)
		}
		if audio[i] != i+1 {
			return services.Wrap(services.ErrConsistency, "assembler", "check scenes",
				fmt.Sprintf("scene numbering gap at %d", audio[i]), nil)
		}
	}
	return nil
}

// pullScenes downloads every scene asset into the scratch directory and
// probes each audio file for its duration.
func (a *Assembler) pullScenes(ctx context.Context, jobID string, scenes []int, workDir string) (map[int]float64, error) {
	durations := make(map[int]float64, len(scenes))
	for _, scene := range scenes {
		audioData, err := a.store.GetAudio(ctx, jobID, scene)
		if err != nil {
			return nil, services.Wrap(services.ErrProvider, "assembler", "pull scenes", "fetch scene audio", err)
		}
		audioPath := filepath.Join(workDir, sceneAudioName(scene))
		if err := os.WriteFile(audioPath, audioData, 0o644); err != nil {
			return nil, services.Wrap(services.ErrTool, "assembler", "pull scenes", "write scene audio", err)
		}

		imageData, err := a.store.GetImage(ctx, jobID, scene)
		if err != nil {
			return nil, services.Wrap(services.ErrProvider, "assembler", "pull scenes", "fetch scene image", err)
		}
		if err := os.WriteFile(filepath.Join(workDir, sceneImageName(scene)), imageData, 0o644); err != nil {
			return nil, services.Wrap(services.ErrTool, "assembler", "pull scenes", "write scene image", err)
		}

		seconds, err := ffprobe.Duration(ctx, a.opts.FFprobeBin, audioPath)
		if err != nil {
			return nil, services.Wrap(services.ErrTool, "assembler", "pull scenes", "probe scene audio duration", err)
		}
		durations[scene] = seconds
	}
	return durations, nil
}

// concatAudio joins the scene audio files into audio.mp3 without
// re-encoding.
func (a *Assembler) concatAudio(ctx context.Context, scenes []int, workDir string) error {
	var manifest strings.Builder
	for _, scene := range scenes {
		fmt.Fprintf(&manifest, "file '%s'\n", sceneAudioName(scene))
	}
	manifestPath := filepath.Join(workDir, "audio.txt")
	if err := os.WriteFile(manifestPath, []byte(manifest.String()), 0o644); err != nil {
		return services.Wrap(services.ErrTool, "assembler", "concat audio", "write audio manifest", err)
	}
	return a.runFFmpeg(ctx, "concat audio",
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-c", "copy",
		filepath.Join(workDir, "audio.mp3"),
	)
}

// writeImageManifest emits the concat demuxer list pairing each image
// with its scene duration. The last image is repeated without a duration
// so the video track does not end before the audio does.
func (a *Assembler) writeImageManifest(scenes []int, durations map[int]float64, workDir string) error {
	var manifest strings.Builder
	for _, scene := range scenes {
		fmt.Fprintf(&manifest, "file '%s'\n", sceneImageName(scene))
		fmt.Fprintf(&manifest, "duration %.3f\n", durations[scene])
	}
	fmt.Fprintf(&manifest, "file '%s'\n", sceneImageName(scenes[len(scenes)-1]))
	path := filepath.Join(workDir, "images.txt")
	if err := os.WriteFile(path, []byte(manifest.String()), 0o644); err != nil {
		return services.Wrap(services.ErrTool, "assembler", "image manifest", "write image manifest", err)
	}
	return nil
}

// mux renders the final MP4 from the image manifest and joined audio.
func (a *Assembler) mux(ctx context.Context, workDir, outputPath string) error {
	scalePad := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2",
		a.opts.Width, a.opts.Height, a.opts.Width, a.opts.Height)
	return a.runFFmpeg(ctx, "mux",
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "concat",
		"-safe", "0",
		"-i", filepath.Join(workDir, "images.txt"),
		"-i", filepath.Join(workDir, "audio.mp3"),
		"-vsync", "cfr",
		"-r", fmt.Sprintf("%d", a.opts.FrameRate),
		"-pix_fmt", "yuv420p",
		"-vf", scalePad,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-shortest",
		outputPath,
	)
}

func (a *Assembler) runFFmpeg(ctx context.Context, operation string, args ...string) error {
	cmd := exec.CommandContext(ctx, a.opts.FFmpegBin, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return services.Wrap(services.ErrTool, "assembler", operation,
			fmt.Sprintf("ffmpeg failed: %s", strings.TrimSpace(string(output))), err)
	}
	return nil
}

func sceneAudioName(scene int) string {
	return fmt.Sprintf("audioScene%04d.mp3", scene)
}

func sceneImageName(scene int) string {
	return fmt.Sprintf("imageScene%04d.png", scene)
}
