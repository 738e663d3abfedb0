package euclid

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for negative sizes or more onsets than steps.
var ErrInvalidArgument = errors.New("euclid: invalid argument")

func validate(k, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: steps must be >= 0: %d", ErrInvalidArgument, n)
	}
	if k < 0 {
		return fmt.Errorf("%w: onsets must be >= 0: %d", ErrInvalidArgument, k)
	}
	if k > n {
		return fmt.Errorf("%w: onsets must be <= steps: %d > %d", ErrInvalidArgument, k, n)
	}
	return nil
}
