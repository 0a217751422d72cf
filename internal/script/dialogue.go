package script

import "strings"

// SectionBreak is the marker token the dialogue prompt instructs the model to
// emit between major topics. It is rendered as audible silence downstream.
const SectionBreak = "[[SECTION_BREAK]]"

// Speaker identifies one of the two fixed dialogue voices.
type Speaker string

const (
	SpeakerA Speaker = "A"
	SpeakerB Speaker = "B"
)

// DialogueLine is one spoken line or a structural break.
type DialogueLine struct {
	Speaker Speaker
	Text    string
	Break   bool
}

// ParseDialogue converts a two-speaker script into ordered dialogue lines.
// Lines that are neither speaker-prefixed nor the section-break token are
// dropped.
func ParseDialogue(text string) []DialogueLine {
	var lines []DialogueLine
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case line == SectionBreak:
			lines = append(lines, DialogueLine{Break: true})
		case strings.HasPrefix(line, "A:"):
			lines = append(lines, DialogueLine{Speaker: SpeakerA, Text: strings.TrimSpace(line[2:])})
		case strings.HasPrefix(line, "B:"):
			lines = append(lines, DialogueLine{Speaker: SpeakerB, Text: strings.TrimSpace(line[2:])})
		}
	}
	return lines
}
