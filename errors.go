package random

import "errors"

// Validation failures wrap one of two kinds so callers can tell a wrong
// kind of argument apart from a wrong value with errors.Is.
var (
	// ErrArgument reports an argument of the wrong kind or shape, such
	// as NaN where a real number is required or a malformed argument
	// list.
	ErrArgument = errors.New("invalid argument")

	// ErrRange reports a value outside the allowed domain, such as an
	// inverted interval, an empty population, or a sample size larger
	// than the population.
	ErrRange = errors.New("value out of range")
)
