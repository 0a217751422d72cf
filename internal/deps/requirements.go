package deps

import "coursecast/internal/config"

// Requirements lists the external binaries a configuration depends on.
// Video assembly is the only stage that shells out, so both entries are
// optional for installs that never produce video jobs.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.FFmpeg.FFmpegBin,
			Description: "Concatenates scene audio and renders video output",
			Optional:    true,
		},
		{
			Name:        "FFprobe",
			Command:     cfg.FFmpeg.FFprobeBin,
			Description: "Measures scene audio durations for slide timing",
			Optional:    true,
		},
	}
}
