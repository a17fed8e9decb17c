package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). Panics if n <= 0.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Between returns a random int in the inclusive range [lo, hi].
func (r *RNG) Between(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
