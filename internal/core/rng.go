package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint32 returns a pseudo-random 32-bit value.
func (r *RNG) Uint32() uint32 { return r.r.Uint32() }

// RandomSeed picks a non-zero world seed from the wall clock.
func RandomSeed() uint32 {
	s := NewRNG(time.Now().UnixNano()).Uint32()
	if s == 0 {
		s = 1
	}
	return s
}
