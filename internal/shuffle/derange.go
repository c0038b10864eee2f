package shuffle

import (
	"fmt"
	"math/rand"
)

// maxShuffleAttempts bounds the reject-and-retry phase of Derange. A uniform
// shuffle is fixed-point free with probability about 1/e, so the fallback is
// practically never reached.
const maxShuffleAttempts = 64

// Derange returns a random permutation p of [0, k) with p[i] != i for every
// i. It panics if k < 2, since no such permutation exists.
//
// Uniform shuffles are drawn until one has no fixed point. If none is found
// within maxShuffleAttempts, Sattolo's algorithm is used instead, which
// always yields a single k-cycle.
func Derange(rng *rand.Rand, k int) []int {
	if k < minGroupSize {
		panic(fmt.Sprintf("cannot derange %d elements", k))
	}

	p := make([]int, k)
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		identity(p)
		rng.Shuffle(k, func(i, j int) { p[i], p[j] = p[j], p[i] })
		if IsDerangement(p) {
			return p
		}
	}

	sattolo(rng, p)
	return p
}

func sattolo(rng *rand.Rand, p []int) {
	identity(p)
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i)
		p[i], p[j] = p[j], p[i]
	}
}

func identity(p []int) {
	for i := range p {
		p[i] = i
	}
}

// IsDerangement reports whether p has no fixed point.
func IsDerangement(p []int) bool {
	for i, v := range p {
		if i == v {
			return false
		}
	}

	return true
}
