package service

import "math/rand/v2"

// randSource is the subset of *rand.Rand used for sampling. Tests plug in a
// seeded generator; production uses the goroutine-safe global source.
type randSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// shuffle permutes items in place with Fisher-Yates.
func shuffle[T any](items []T, rng randSource) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
