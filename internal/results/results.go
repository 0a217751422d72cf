// Package results maps conversion kinds to their output artifact naming
// and content types.
package results

import (
	"fmt"

	"coursecast/internal/jobs"
)

// Artifact describes the output file shape for one conversion kind.
type Artifact struct {
	Suffix      string
	ContentType string
}

var artifacts = map[jobs.Kind]Artifact{
	jobs.KindNarration: {Suffix: ".mp3", ContentType: "audio/mpeg"},
	jobs.KindPodcast:   {Suffix: ".mp3", ContentType: "audio/mpeg"},
	jobs.KindDeck:      {Suffix: ".pptx", ContentType: "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	jobs.KindSummary:   {Suffix: ".txt", ContentType: "text/plain; charset=utf-8"},
	jobs.KindQuiz:      {Suffix: ".json", ContentType: "application/json"},
	jobs.KindVideo:     {Suffix: ".mp4", ContentType: "video/mp4"},
}

// For returns the artifact shape for a conversion kind.
func For(kind jobs.Kind) (Artifact, error) {
	artifact, ok := artifacts[kind]
	if !ok {
		return Artifact{}, fmt.Errorf("results: unknown conversion kind %q", kind)
	}
	return artifact, nil
}

// FileName builds the output file name for a job.
func FileName(jobID string, kind jobs.Kind) (string, error) {
	artifact, err := For(kind)
	if err != nil {
		return "", err
	}
	return jobID + artifact.Suffix, nil
}
