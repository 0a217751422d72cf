package script

import "strings"

// SceneDelimiter separates scenes in a generated video outline.
const SceneDelimiter = "---"

const (
	narrationPrefix    = "Narration:"
	illustrationPrefix = "Illustration:"
)

// Scene is one narration+illustration unit of a video job. Number is 1-based
// and contiguous; it is the sole ordering key downstream.
type Scene struct {
	Number       int
	Narration    string
	Illustration string
}

// ParseScenes converts a video outline into ordered, numbered scenes. A
// delimiter line closes the scene in progress when both fields are set;
// incomplete scenes are dropped. A complete trailing scene is flushed at end
// of input.
func ParseScenes(text string) []Scene {
	var scenes []Scene
	var current Scene

	flush := func() {
		if current.Narration != "" && current.Illustration != "" {
			current.Number = len(scenes) + 1
			scenes = append(scenes, current)
		}
		current = Scene{}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case line == SceneDelimiter:
			flush()
		case strings.HasPrefix(line, narrationPrefix):
			current.Narration = strings.TrimSpace(line[len(narrationPrefix):])
		case strings.HasPrefix(line, illustrationPrefix):
			current.Illustration = strings.TrimSpace(line[len(illustrationPrefix):])
		}
	}
	flush()

	return scenes
}
