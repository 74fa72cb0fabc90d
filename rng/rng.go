// Package rng provides the single ordered random stream shared by level
// generation and the floor event machine. Every consumer draws from the same
// Source so a seed reproduces a whole session.
package rng

import (
	"math/rand/v2"
)

// Source is the random stream consumed by the tower generator and the event
// machine. Ranges are half-open.
type Source interface {
	// Bool reports true with probability p.
	Bool(p float64) bool
	// IntRange returns a uniform int in [lo, hi).
	IntRange(lo, hi int) int
	// FloatRange returns a uniform float in [lo, hi).
	FloatRange(lo, hi float64) float64
}

// Stream is a seeded PCG-backed Source.
type Stream struct {
	r *rand.Rand
}

func New(seed uint64) *Stream {
	return &Stream{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Stream) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		panic("rng: empty int range")
	}
	return lo + s.r.IntN(hi-lo)
}

func (s *Stream) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		panic("rng: empty float range")
	}
	return lo + s.r.Float64()*(hi-lo)
}
