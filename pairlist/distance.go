package pairlist

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrLengthMismatch is returned by Distance for columns of unequal length.
	ErrLengthMismatch = fmt.Errorf("left and right aren't of same length")
	// ErrOverflow is returned when a sum or product does not fit in a uint64.
	ErrOverflow = errors.New("result overflows uint64")
)

// Distance sums the positional absolute differences of two ascending columns.
// Columns of unequal length are an error, never truncated.
func Distance(left, right []uint64) (uint64, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(left), len(right))
	}

	var sum, carry uint64
	for i := range left {
		sum, carry = bits.Add64(sum, absDiff(left[i], right[i]), 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: distance at pair %d", ErrOverflow, i)
		}
	}

	return sum, nil
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
