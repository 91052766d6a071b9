package random

import "fmt"

// Range returns a uniform random element of an integer progression,
// mirroring Python's randrange:
//
//	Range(stop)              an integer in [0, stop)
//	Range(start, stop)       an integer in [start, stop)
//	Range(start, stop, step) start + i*step, stopping before stop
//
// A negative step walks a descending progression, stopping above stop.
// Empty progressions and a zero step wrap ErrRange; any other argument
// count wraps ErrArgument.
func (r *Rand) Range(bounds ...int) (int, error) {
	start, stop, step := 0, 0, 1
	switch len(bounds) {
	case 1:
		stop = bounds[0]
	case 2:
		start, stop = bounds[0], bounds[1]
	case 3:
		start, stop, step = bounds[0], bounds[1], bounds[2]
	default:
		return 0, fmt.Errorf("random: range: want 1 to 3 bounds, got %d: %w", len(bounds), ErrArgument)
	}
	if step == 0 {
		return 0, fmt.Errorf("random: range: step must not be zero: %w", ErrRange)
	}

	// Count of reachable values: ceil(|stop-start| / |step|), zero or
	// negative when the progression runs away from stop.
	var n int
	if step > 0 {
		n = (stop - start + step - 1) / step
	} else {
		n = (start - stop - step - 1) / -step
	}
	if n <= 0 {
		return 0, fmt.Errorf("random: range: empty progression from %d to %d by %d: %w", start, stop, step, ErrRange)
	}

	i, err := r.IntN(n)
	if err != nil {
		return 0, err
	}
	return start + i*step, nil
}
