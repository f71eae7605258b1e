package main

import (
	"hash/maphash"
	"math/rand/v2"
)

// newRand returns a source for the i-th script. A zero seed draws a random
// one, otherwise every script gets a distinct deterministic stream.
func newRand(seed, i uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, i))
}
