package narration

import (
	"errors"
	"math/rand"
)

// PickVoice selects one voice from the pool.
func PickVoice(rng *rand.Rand, pool []string) (string, error) {
	if len(pool) == 0 {
		return "", errors.New("narration: voice pool is empty")
	}
	return pool[rng.Intn(len(pool))], nil
}

// PickVoicePair selects two distinct voices from the pool. The first is
// used for speaker A, the second for speaker B.
func PickVoicePair(rng *rand.Rand, pool []string) (string, string, error) {
	if len(pool) < 2 {
		return "", "", errors.New("narration: voice pool needs at least two voices")
	}
	first := rng.Intn(len(pool))
	second := rng.Intn(len(pool) - 1)
	if second >= first {
		second++
	}
	return pool[first], pool[second], nil
}
