// Package random provides Python-style convenience helpers for random
// values: uniform integers and reals, choices, samples, shuffles,
// weighted selection with replacement, and normally distributed draws.
//
// All draws derive from a Source producing uniform float64 values in
// [0, 1). New wraps a randomly seeded PCG generator; NewSource accepts
// any caller-supplied source, which is also the hook for instrumenting
// draw counts in tests. A Rand is safe for concurrent use.
//
// Validation failures wrap ErrArgument (wrong kind of argument) or
// ErrRange (wrong value), distinguishable with errors.Is. Draws are
// never reproducible: the package offers no seeding.
//
// For unpredictable values suited to tokens and secrets, see the
// secure subpackage.
package random

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

// maxExact is the largest interval width for which floor(u*width) maps
// the unit draw onto every integer exactly: the float64 mantissa is 53
// bits wide, so wider intervals would skip values.
const maxExact = 1 << 53

// Source is the uniform randomness behind a Rand. Float64 must return
// values uniformly distributed in [0, 1) and independent across calls.
// *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	Float64() float64
}

// Rand derives Python-style draws from a Source. The zero value is not
// usable; construct with New or NewSource.
type Rand struct {
	mu     sync.Mutex
	src    Source
	gauss  float64 // second Box-Muller deviate, valid while cached
	cached bool
}

// New returns a Rand over a randomly seeded PCG generator.
func New() *Rand {
	return NewSource(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewSource returns a Rand drawing from src. The Rand serializes access
// to src, so src itself need not be safe for concurrent use.
func NewSource(src Source) *Rand {
	return &Rand{src: src}
}

// Float64 returns a uniform random float64 in [0, 1).
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// Uniform returns a uniform random float64 in [lo, hi). The bounds must
// be finite and ordered; equal bounds always yield lo.
func (r *Rand) Uniform(lo, hi float64) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, fmt.Errorf("random: uniform: bounds must be numbers: %w", ErrArgument)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, fmt.Errorf("random: uniform: bounds must be finite: %w", ErrRange)
	}
	if lo > hi {
		return 0, fmt.Errorf("random: uniform: lo %v greater than hi %v: %w", lo, hi, ErrRange)
	}
	return r.Float64()*(hi-lo) + lo, nil
}

// Int returns a uniform random integer in [lo, hi], both bounds
// inclusive. Intervals spanning more than 2^53 values are rejected
// because the draw could no longer hit every value exactly.
func (r *Rand) Int(lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("random: int: lo %d greater than hi %d: %w", lo, hi, ErrRange)
	}
	if width := uint64(hi) - uint64(lo); width >= maxExact {
		return 0, fmt.Errorf("random: int: interval [%d, %d] wider than 2^53: %w", lo, hi, ErrRange)
	}
	width := float64(uint64(hi)-uint64(lo)) + 1
	return lo + int(r.Float64()*width), nil
}

// IntN returns a uniform random integer in [0, n).
func (r *Rand) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: intn: n must be positive, got %d: %w", n, ErrRange)
	}
	if uint64(n) > maxExact {
		return 0, fmt.Errorf("random: intn: n %d larger than 2^53: %w", n, ErrRange)
	}
	return int(r.Float64() * float64(n)), nil
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.Float64() < 0.5
}
