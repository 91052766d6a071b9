package random

import "fmt"

// Choice returns one element of items, each index equally likely.
func Choice[T any](r *Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("random: choice: empty slice: %w", ErrRange)
	}
	i, err := r.IntN(len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// Sample returns k distinct elements drawn from items without
// replacement. The result is a uniformly random k-subset; its order
// carries no guarantee. items is never modified.
//
// When k exceeds half the population the whole population is copied,
// shuffled, and truncated to k; otherwise distinct indices are drawn
// directly, rejecting duplicates. Below the crossover the collision
// probability per draw stays at or below one half, keeping the expected
// number of draws O(k). The crossover point is a heuristic, not a
// correctness boundary.
func Sample[T any](r *Rand, items []T, k int) ([]T, error) {
	n := len(items)
	if k < 0 {
		return nil, fmt.Errorf("random: sample: k must be non-negative, got %d: %w", k, ErrRange)
	}
	if k > n {
		return nil, fmt.Errorf("random: sample: k %d larger than population %d: %w", k, n, ErrRange)
	}

	if k > n/2 {
		cp := make([]T, n)
		copy(cp, items)
		Shuffle(r, cp)
		return cp[:k:k], nil
	}

	out := make([]T, 0, k)
	seen := make(map[int]struct{}, k)
	for len(out) < k {
		i, err := r.IntN(n)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, items[i])
	}
	return out, nil
}

// Shuffle permutes items in place with the Fisher-Yates algorithm, so
// that every permutation is equally likely.
func Shuffle[T any](r *Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}

// Perm returns a uniform random permutation of the integers in [0, n).
func (r *Rand) Perm(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("random: perm: n must be non-negative, got %d: %w", n, ErrRange)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(r, p)
	return p, nil
}
