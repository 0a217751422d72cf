package ffprobe

import (
	"testing"
)

func TestDurationSeconds(t *testing.T) {
	result := Result{Format: Format{Duration: "123.45"}}
	seconds, ok := result.DurationSeconds()
	if !ok {
		t.Fatal("expected duration to be present")
	}
	if seconds != 123.45 {
		t.Fatalf("unexpected duration: %v", seconds)
	}
}

func TestDurationSecondsAbsentOrInvalid(t *testing.T) {
	for _, value := range []string{"", "bad", "0", "-3"} {
		result := Result{Format: Format{Duration: value}}
		if _, ok := result.DurationSeconds(); ok {
			t.Fatalf("duration %q should not be usable", value)
		}
	}
}

func TestAudioStreamCount(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video"},
			{CodecType: "audio"},
			{CodecType: "audio"},
		},
	}
	if result.AudioStreamCount() != 2 {
		t.Fatalf("expected 2 audio streams, got %d", result.AudioStreamCount())
	}
}
