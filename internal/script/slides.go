package script

import "strings"

// Slide is one parsed slide outline record.
type Slide struct {
	Title        string
	Bullets      []string
	Illustration string
}

// ParseSlides converts a slide outline into ordered slide records. A "Slide"
// line opens a new record with the title after the first colon, "-" lines add
// bullets, and an "Image:" line (case-insensitive) sets the illustration
// prompt. Anything else is dropped. A record is appended when the next
// "Slide" line or end of input is reached, so a title-only slide with zero
// bullets is still emitted.
func ParseSlides(text string) []Slide {
	var slides []Slide
	var current *Slide

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Slide"):
			if current != nil {
				slides = append(slides, *current)
			}
			title := ""
			if idx := strings.Index(line, ":"); idx >= 0 {
				title = strings.TrimSpace(line[idx+1:])
			}
			current = &Slide{Title: title}
		case strings.HasPrefix(line, "-") && current != nil:
			current.Bullets = append(current.Bullets, strings.TrimSpace(line[1:]))
		case len(line) >= 6 && strings.EqualFold(line[:6], "Image:") && current != nil:
			current.Illustration = strings.TrimSpace(line[6:])
		}
	}

	if current != nil {
		slides = append(slides, *current)
	}
	return slides
}
