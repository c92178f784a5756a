package core

import "math/rand/v2"

// Random is the source of every stochastic decision a generator makes.
// Implementations must be deterministic for a given seed.
type Random interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntRange returns a uniform integer in [lo, hi). It returns lo when
	// hi <= lo.
	IntRange(lo, hi int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntRange returns a random integer in [lo, hi).
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// Chance reports whether a single Bernoulli draw with probability p succeeds.
func Chance(r Random, p float64) bool {
	return r.Float64() < p
}
