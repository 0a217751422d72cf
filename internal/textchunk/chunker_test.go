package textchunk_test

import (
	"strings"
	"testing"

	"coursecast/internal/textchunk"
)

func TestChunkEmptyInput(t *testing.T) {
	if got := textchunk.Chunk("", 100); len(got) != 0 {
		t.Fatalf("expected no chunks, got %v", got)
	}
	if got := textchunk.Chunk("   \n\t ", 100); len(got) != 0 {
		t.Fatalf("expected no chunks for whitespace input, got %v", got)
	}
}

func TestChunkRespectsLimit(t *testing.T) {
	text := "One sentence here. Another sentence follows! A third one? Short."
	chunks := textchunk.Chunk(text, 30)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	for _, chunk := range chunks {
		if len(chunk) > 30 {
			t.Fatalf("chunk %q exceeds limit", chunk)
		}
	}
}

func TestChunkReassemblesOriginal(t *testing.T) {
	text := "First point. Second point matters! Does the third? Yes. Absolutely final thought."
	chunks := textchunk.Chunk(text, 25)
	joined := strings.Join(chunks, " ")
	want := strings.Join(strings.Fields(text), " ")
	got := strings.Join(strings.Fields(joined), " ")
	if got != want {
		t.Fatalf("reassembled text mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestChunkOversizedSentenceEmittedWhole(t *testing.T) {
	long := "This single sentence is deliberately much longer than the limit we set below."
	chunks := textchunk.Chunk(long+" Tiny one.", 20)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != long {
		t.Fatalf("oversized sentence should be emitted whole, got %q", chunks[0])
	}
	if chunks[1] != "Tiny one." {
		t.Fatalf("unexpected second chunk %q", chunks[1])
	}
}

func TestChunkSingleChunkWhenUnderLimit(t *testing.T) {
	text := "Alpha. Beta. Gamma."
	chunks := textchunk.Chunk(text, 1000)
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk, got %v", chunks)
	}
	if chunks[0] != "Alpha. Beta. Gamma." {
		t.Fatalf("unexpected chunk %q", chunks[0])
	}
}

func TestChunkHandlesPunctuationRuns(t *testing.T) {
	chunks := textchunk.Chunk("Really?! Yes... Sure.", 1000)
	if len(chunks) != 1 {
		t.Fatalf("expected single chunk, got %v", chunks)
	}
	if !strings.Contains(chunks[0], "Really?!") || !strings.Contains(chunks[0], "Yes...") {
		t.Fatalf("punctuation runs mangled: %q", chunks[0])
	}
}

func TestChunkNoEmptyChunks(t *testing.T) {
	chunks := textchunk.Chunk("A. B. C. D. E. F. G.", 4)
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			t.Fatalf("chunk %d is empty", i)
		}
	}
}
