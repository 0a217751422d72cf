package narration

import (
	"math/rand"
	"testing"
)

func TestPickVoicePairAlwaysDistinct(t *testing.T) {
	pool := []string{"Matthew", "Danielle", "Joanna"}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a, b, err := PickVoicePair(rng, pool)
		if err != nil {
			t.Fatalf("PickVoicePair: %v", err)
		}
		if a == b {
			t.Fatalf("iteration %d: both speakers got %q", i, a)
		}
	}
}

func TestPickVoicePairNeedsTwoVoices(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, _, err := PickVoicePair(rng, []string{"Matthew"}); err == nil {
		t.Fatal("expected error for single-voice pool")
	}
}

func TestPickVoiceEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := PickVoice(rng, nil); err == nil {
		t.Fatal("expected error for empty pool")
	}
}
