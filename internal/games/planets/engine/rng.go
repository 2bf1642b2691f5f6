package engine

import "math/rand"

// Source is the randomness the engine draws from.
// *rand.Rand satisfies it; tests plug in scripted sources.
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// shuffle permutes tokens in place with Fisher-Yates.
func shuffle(rng Source, tokens []int) {
	for i := len(tokens) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}
