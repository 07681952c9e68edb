// Package fleet - deterministic RNG plumbing for k-means++ seeding.
//
// A single seed->*rand.Rand factory so the same Options.Seed always produces
// the same first-centroid choice and the same final clustering.
package fleet

import "math/rand"

// defaultSeed is the fixed seed used when Options.Seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed == 0 maps to
// defaultSeed so DefaultOptions() is reproducible without callers having to
// pick an arbitrary nonzero value.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
