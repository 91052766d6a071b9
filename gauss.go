package random

import (
	"fmt"
	"math"
)

// Gauss returns a random value drawn from the normal distribution with
// the given mean and standard deviation. The standard deviation must be
// finite and strictly positive.
//
// The Box-Muller transform produces standard normal deviates in pairs.
// The second deviate of each pair is cached on the instance and
// consumed by the next call, scaled by that call's mean and stddev, so
// two results cost one pair of uniform draws on average. The cache
// read-and-clear runs under the instance lock, so concurrent callers
// cannot consume the same deviate twice.
func (r *Rand) Gauss(mean, stddev float64) (float64, error) {
	if math.IsNaN(mean) || math.IsNaN(stddev) {
		return 0, fmt.Errorf("random: gauss: mean and stddev must be numbers: %w", ErrArgument)
	}
	if math.IsInf(mean, 0) || math.IsInf(stddev, 0) {
		return 0, fmt.Errorf("random: gauss: mean and stddev must be finite: %w", ErrRange)
	}
	if stddev <= 0 {
		return 0, fmt.Errorf("random: gauss: stddev must be positive, got %v: %w", stddev, ErrRange)
	}

	r.mu.Lock()
	if r.cached {
		z := r.gauss
		r.cached = false
		r.mu.Unlock()
		return z*stddev + mean, nil
	}

	u1 := r.src.Float64()
	for u1 == 0 { // log(0) is -Inf
		u1 = r.src.Float64()
	}
	u2 := r.src.Float64()
	rad := math.Sqrt(-2 * math.Log(u1))
	z := rad * math.Cos(2*math.Pi*u2)
	r.gauss = rad * math.Sin(2*math.Pi*u2)
	r.cached = true
	r.mu.Unlock()
	return z*stddev + mean, nil
}

// NormFloat64 returns a standard normal random value (mean 0, standard
// deviation 1).
func (r *Rand) NormFloat64() float64 {
	z, _ := r.Gauss(0, 1)
	return z
}

// ResetGauss discards the cached Box-Muller deviate, if any. It is
// handy for isolating runs that count draws from the underlying source.
func (r *Rand) ResetGauss() {
	r.mu.Lock()
	r.cached = false
	r.mu.Unlock()
}
