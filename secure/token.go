package secure

import (
	"fmt"

	"github.com/alextanhongpin/random"
)

const (
	alphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	hexDigits    = "0123456789abcdef"
)

// String returns a random string of length n over charset, every
// character drawn independently and without bias. An empty charset
// selects the alphanumeric set.
func String(n int, charset string) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("secure: string: length must be a non-negative integer, got %d: %w", n, random.ErrArgument)
	}
	if charset == "" {
		charset = alphaNumeric
	}

	b := make([]byte, n)
	for i := range b {
		j, err := Int(0, len(charset)-1)
		if err != nil {
			return "", err
		}
		b[i] = charset[j]
	}
	return string(b), nil
}

// AlphaNumeric returns a random alphanumeric string of length n, useful
// for session IDs and API keys.
func AlphaNumeric(n int) (string, error) {
	return String(n, alphaNumeric)
}

// Hex returns a random hexadecimal string of length n.
func Hex(n int) (string, error) {
	return String(n, hexDigits)
}
