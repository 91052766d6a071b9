package random

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float type. Weights may be expressed in
// whichever numeric type is at hand; they are normalized before use.
type Number interface {
	constraints.Integer | constraints.Float
}

// Choices returns k elements drawn from items independently and with
// replacement, element i selected with probability proportional to
// weights[i]. Nil weights select uniformly. Weights must match the
// population in length, be finite and non-negative, and sum to more
// than zero.
//
// Each draw walks a cumulative probability table by binary search, so
// the cost is one table build plus O(k log n) lookups.
func Choices[T any, W Number](r *Rand, items []T, weights []W, k int) ([]T, error) {
	n := len(items)
	if n == 0 {
		return nil, fmt.Errorf("random: choices: empty population: %w", ErrRange)
	}
	if k < 0 {
		return nil, fmt.Errorf("random: choices: k must be non-negative, got %d: %w", k, ErrRange)
	}

	out := make([]T, k)
	if weights == nil {
		for i := range out {
			j, err := r.IntN(n)
			if err != nil {
				return nil, err
			}
			out[i] = items[j]
		}
		return out, nil
	}

	cum, err := cumulative(weights, n)
	if err != nil {
		return nil, err
	}
	for i := range out {
		// Leftmost entry not below the draw.
		out[i] = items[sort.SearchFloat64s(cum, r.Float64())]
	}
	return out, nil
}

// cumulative normalizes weights into a non-decreasing cumulative
// probability table. The last entry is forced to exactly 1 so that a
// unit draw always lands inside the table despite rounding drift.
func cumulative[W Number](weights []W, n int) ([]float64, error) {
	if len(weights) != n {
		return nil, fmt.Errorf("random: choices: %d weights for %d elements: %w", len(weights), n, ErrRange)
	}
	var total float64
	for i, w := range weights {
		f := float64(w)
		if math.IsNaN(f) {
			return nil, fmt.Errorf("random: choices: weight %d is not a number: %w", i, ErrArgument)
		}
		if math.IsInf(f, 0) {
			return nil, fmt.Errorf("random: choices: weight %d is infinite: %w", i, ErrRange)
		}
		if f < 0 {
			return nil, fmt.Errorf("random: choices: weight %d is negative: %w", i, ErrRange)
		}
		total += f
	}
	if total <= 0 {
		return nil, fmt.Errorf("random: choices: weights sum to zero: %w", ErrRange)
	}

	cum := make([]float64, len(weights))
	var acc float64
	for i, w := range weights {
		acc += float64(w) / total
		cum[i] = acc
	}
	cum[len(cum)-1] = 1
	return cum, nil
}
