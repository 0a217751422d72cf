// Package textchunk splits long text into bounded-size pieces on sentence
// boundaries for providers with a per-call size limit.
package textchunk

import (
	"strings"
	"unicode"
)

// Chunk splits text into ordered pieces of at most limit characters, packing
// whole sentences greedily. A single sentence longer than limit is emitted
// whole rather than split mid-sentence. Empty input yields no chunks.
func Chunk(text string, limit int) []string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}
	if limit <= 0 {
		return []string{strings.Join(sentences, " ")}
	}

	var chunks []string
	var current strings.Builder
	for _, sentence := range sentences {
		switch {
		case current.Len() == 0:
			current.WriteString(sentence)
		case current.Len()+1+len(sentence) <= limit:
			current.WriteByte(' ')
			current.WriteString(sentence)
		default:
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(sentence)
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// splitSentences cuts text after terminal punctuation followed by whitespace.
func splitSentences(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var sentences []string
	runes := []rune(trimmed)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// Consume any run of terminal punctuation ("?!", "...").
		end := i
		for end+1 < len(runes) && isTerminal(runes[end+1]) {
			end++
		}
		if end+1 < len(runes) && !unicode.IsSpace(runes[end+1]) {
			i = end
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		i = end
		start = end + 1
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
