package script_test

import (
	"testing"

	"coursecast/internal/script"
)

func TestParseDialogueBasic(t *testing.T) {
	input := "A: hello\n[[SECTION_BREAK]]\nB: hi there"
	lines := script.ParseDialogue(input)
	if len(lines) != 3 {
		t.Fatalf("expected 3 records, got %d", len(lines))
	}
	if lines[0].Speaker != script.SpeakerA || lines[0].Text != "hello" {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if !lines[1].Break {
		t.Fatalf("expected break record, got %+v", lines[1])
	}
	if lines[2].Speaker != script.SpeakerB || lines[2].Text != "hi there" {
		t.Fatalf("unexpected third line: %+v", lines[2])
	}
}

func TestParseDialogueDropsNoise(t *testing.T) {
	input := "Intro music plays\n\nA: first\n(stage direction)\n\nB: second\n"
	lines := script.ParseDialogue(input)
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(lines), lines)
	}
	if lines[0].Text != "first" || lines[1].Text != "second" {
		t.Fatalf("record order disturbed: %+v", lines)
	}
}

func TestParseDialogueTrimsSpeakerPrefix(t *testing.T) {
	lines := script.ParseDialogue("A:   spaced out   ")
	if len(lines) != 1 || lines[0].Text != "spaced out" {
		t.Fatalf("expected trimmed text, got %+v", lines)
	}
}

func TestParseDialogueEmpty(t *testing.T) {
	if lines := script.ParseDialogue(""); len(lines) != 0 {
		t.Fatalf("expected no records, got %+v", lines)
	}
}
