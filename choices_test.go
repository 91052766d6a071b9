package random_test

import (
	"math"
	"testing"

	"github.com/alextanhongpin/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoices(t *testing.T) {
	r := random.New()

	t.Run("weighted selection", func(t *testing.T) {
		got, err := random.Choices(r, []string{"a", "b"}, []float64{0.9, 0.1}, 1_000)
		require.NoError(t, err)
		require.Len(t, got, 1_000)

		var a int
		for _, v := range got {
			if v == "a" {
				a++
			}
		}
		assert.Greater(t, a, 800)
		assert.Less(t, a, 980)
	})

	t.Run("integer weights", func(t *testing.T) {
		got, err := random.Choices(r, []string{"a", "b"}, []int{9, 1}, 1_000)
		require.NoError(t, err)

		var a int
		for _, v := range got {
			if v == "a" {
				a++
			}
		}
		assert.Greater(t, a, 800)
	})

	t.Run("nil weights are uniform", func(t *testing.T) {
		got, err := random.Choices(r, []int{0, 1, 2}, []float64(nil), 9_000)
		require.NoError(t, err)

		counts := make(map[int]int)
		for _, v := range got {
			counts[v]++
		}
		for v := 0; v < 3; v++ {
			assert.InDelta(t, 3_000, counts[v], 300, "value %d", v)
		}
	})

	t.Run("zero-weight element is never drawn", func(t *testing.T) {
		got, err := random.Choices(r, []string{"a", "b"}, []float64{1, 0}, 500)
		require.NoError(t, err)
		assert.NotContains(t, got, "b")
	})

	t.Run("k zero", func(t *testing.T) {
		got, err := random.Choices(r, []string{"a"}, []float64{1}, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty population", func(t *testing.T) {
		_, err := random.Choices(r, []string{}, []float64{}, 1)
		assert.ErrorIs(t, err, random.ErrRange)
	})

	t.Run("negative k", func(t *testing.T) {
		_, err := random.Choices(r, []string{"a"}, []float64{1}, -1)
		assert.ErrorIs(t, err, random.ErrRange)
	})

	t.Run("mismatched weight length", func(t *testing.T) {
		_, err := random.Choices(r, []string{"a", "b"}, []float64{1}, 1)
		assert.ErrorIs(t, err, random.ErrRange)
	})

	t.Run("negative weight", func(t *testing.T) {
		_, err := random.Choices(r, []string{"a", "b"}, []float64{1, -1}, 1)
		assert.ErrorIs(t, err, random.ErrRange)
	})

	t.Run("zero-sum weights", func(t *testing.T) {
		_, err := random.Choices(r, []string{"a", "b"}, []float64{0, 0}, 1)
		assert.ErrorIs(t, err, random.ErrRange)
	})

	t.Run("NaN weight", func(t *testing.T) {
		_, err := random.Choices(r, []string{"a", "b"}, []float64{1, math.NaN()}, 1)
		assert.ErrorIs(t, err, random.ErrArgument)
	})

	t.Run("infinite weight", func(t *testing.T) {
		_, err := random.Choices(r, []string{"a", "b"}, []float64{1, math.Inf(1)}, 1)
		assert.ErrorIs(t, err, random.ErrRange)
	})
}
