package core

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 for deterministic board seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Coord returns a uniformly random cell position on a board of size s.
func (r *RNG) Coord(s Size) (int, int) {
	return r.r.IntN(s.W), r.r.IntN(s.H)
}

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }
