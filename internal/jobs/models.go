package jobs

import (
	"strings"
	"time"
)

// Status represents the lifecycle of a conversion job.
type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

var allStatuses = []Status{
	StatusUploaded,
	StatusProcessing,
	StatusCompleted,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// Kind enumerates the supported conversion targets.
type Kind string

const (
	KindNarration Kind = "narration-audio"
	KindPodcast   Kind = "two-speaker-audio"
	KindDeck      Kind = "slide-deck"
	KindSummary   Kind = "summary"
	KindQuiz      Kind = "quiz"
	KindVideo     Kind = "video"
)

var allKinds = []Kind{
	KindNarration,
	KindPodcast,
	KindDeck,
	KindSummary,
	KindQuiz,
	KindVideo,
}

// Job represents a conversion request persisted in SQLite. SourceFiles are
// stored-file references under the upload directory; OutputFile is set only
// once the job completes.
type Job struct {
	ID           string
	SourceFiles  []string
	Kind         Kind
	Status       Status
	OutputFile   string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// AllKinds returns the ordered list of known conversion kinds.
func AllKinds() []Kind {
	cp := make([]Kind, len(allKinds))
	copy(cp, allKinds)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// ParseKind converts a string into a known Kind.
func ParseKind(value string) (Kind, bool) {
	normalized := Kind(strings.ToLower(strings.TrimSpace(value)))
	for _, kind := range allKinds {
		if kind == normalized {
			return kind, true
		}
	}
	return "", false
}

// IsTerminal reports whether the status will never change again.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// SetFailed marks the job as failed with the given error message and clears
// any output reference so a failed job never points at a partial artifact.
func (j *Job) SetFailed(message string) {
	j.Status = StatusFailed
	j.ErrorMessage = message
	j.OutputFile = ""
}
