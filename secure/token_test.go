package secure_test

import (
	"strings"
	"testing"

	"github.com/alextanhongpin/random"
	"github.com/alextanhongpin/random/secure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Run("uses only the given charset", func(t *testing.T) {
		s, err := secure.String(64, "abc")
		require.NoError(t, err)
		require.Len(t, s, 64)
		for _, c := range s {
			assert.Contains(t, "abc", string(c))
		}
	})

	t.Run("empty charset falls back to alphanumeric", func(t *testing.T) {
		s, err := secure.String(64, "")
		require.NoError(t, err)
		require.Len(t, s, 64)
		for _, c := range s {
			assert.True(t, strings.ContainsRune(
				"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", c))
		}
	})

	t.Run("zero length", func(t *testing.T) {
		s, err := secure.String(0, "abc")
		require.NoError(t, err)
		assert.Empty(t, s)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := secure.String(-1, "abc")
		assert.ErrorIs(t, err, random.ErrArgument)
	})
}

func TestAlphaNumeric(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s, err := secure.AlphaNumeric(16)
		require.NoError(t, err)
		require.Len(t, s, 16)
		require.False(t, seen[s], "token repeated")
		seen[s] = true
	}
}

func TestHex(t *testing.T) {
	s, err := secure.Hex(32)
	require.NoError(t, err)
	require.Len(t, s, 32)
	for _, c := range s {
		assert.True(t, strings.ContainsRune("0123456789abcdef", c))
	}
}
