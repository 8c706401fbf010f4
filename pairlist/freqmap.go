package pairlist

import (
	"fmt"
	"math/bits"
)

// FreqMap counts occurrences per value.
type FreqMap map[uint64]uint64

// NewFreqMap counts every value in values.
func NewFreqMap(values []uint64) FreqMap {
	m := make(FreqMap, len(values))
	for _, v := range values {
		m[v]++
	}
	return m
}

// Similarity weights every value in left by how often it occurs in m.
// Values missing from m contribute nothing.
func (m FreqMap) Similarity(left []uint64) (uint64, error) {
	var sum uint64
	for _, v := range left {
		count, ok := m[v]
		if !ok {
			continue
		}

		hi, lo := bits.Mul64(v, count)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, v, count)
		}

		var carry uint64
		sum, carry = bits.Add64(sum, lo, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: similarity at value %d", ErrOverflow, v)
		}
	}
	return sum, nil
}

// Similarity is the left column scored against the right column's table,
// the form returned by ReadFrequencies.
func Similarity(left []uint64, m FreqMap) (uint64, error) {
	return m.Similarity(left)
}
