// Package secure draws unpredictable random values from the operating
// system's entropy source, suitable for tokens, keys, and anything an
// adversary must not guess. It is the hardened counterpart of the root
// random package: integer-range and choice helpers free of modulo bias,
// plus raw byte and token generation, over crypto/rand.
//
// Failures of the entropy source wrap ErrUnavailable. Argument
// validation wraps random.ErrArgument and random.ErrRange, the same
// kinds the root package uses.
package secure

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/alextanhongpin/random"
)

// span is the number of distinct values four bytes can encode.
const span = 1 << 32

// ErrUnavailable reports that the entropy source could not supply
// bytes. It wraps the underlying read error.
var ErrUnavailable = errors.New("entropy source unavailable")

// Reader is the package's entropy source, crypto/rand.Reader by
// default. Substituting it is intended for tests.
var Reader io.Reader = cryptorand.Reader

// Bytes returns n cryptographically unpredictable bytes.
func Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("secure: bytes: count must be a non-negative integer, got %d: %w", n, random.ErrArgument)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, fmt.Errorf("secure: bytes: %v: %w", err, ErrUnavailable)
	}
	return b, nil
}

// Uint32 returns a uniform random uint32 composed big-endian from four
// secure bytes.
func Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(Reader, buf[:]); err != nil {
		return 0, fmt.Errorf("secure: uint32: %v: %w", err, ErrUnavailable)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// Int returns a uniform random integer in [lo, hi], both bounds
// inclusive, with no modulo bias.
//
// Each attempt draws exactly four secure bytes, so the interval may
// span at most 2^32 values. Draws at or above the largest multiple of
// the interval width below 2^32 are rejected and retried, which removes
// the bias a plain modulo reduction would introduce. The expected
// number of attempts is 2^32 divided by that multiple, always below
// two.
func Int(lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("secure: int: lo %d greater than hi %d: %w", lo, hi, random.ErrRange)
	}
	width := uint64(hi) - uint64(lo) + 1
	if width > span {
		return 0, fmt.Errorf("secure: int: interval [%d, %d] wider than 2^32: %w", lo, hi, random.ErrRange)
	}

	maxValid := span / width * width
	for {
		v, err := Uint32()
		if err != nil {
			return 0, err
		}
		if u := uint64(v); u < maxValid {
			return lo + int(u%width), nil
		}
	}
}

// Choice returns one element of items, each index equally likely.
func Choice[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("secure: choice: empty slice: %w", random.ErrRange)
	}
	i, err := Int(0, len(items)-1)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}
