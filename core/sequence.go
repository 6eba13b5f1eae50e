package core

import "math/bits"

// Sequence is an ascending, duplicate-free list of primes. Helpers on
// Sequence only read; the slice is built once by the enumerator and then
// shared as an immutable view.
type Sequence []uint64

// Len returns the number of primes in the sequence.
func (s Sequence) Len() int { return len(s) }

// First returns the smallest prime, or false when the sequence is empty.
func (s Sequence) First() (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0], true
}

// Last returns the largest prime, or false when the sequence is empty.
func (s Sequence) Last() (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Max is the largest element. It scans instead of trusting order so it also
// holds for sequences built by hand.
func (s Sequence) Max() (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	m := s[0]
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m, true
}

// Sum adds all elements. The result wraps modulo 2^64.
func (s Sequence) Sum() uint64 {
	var sum uint64
	for _, v := range s {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean, or 0 for an empty sequence.
func (s Sequence) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum, carry uint64
	for _, v := range s {
		sum, carry = bits.Add64(sum, v, 0)
		if carry != 0 {
			return s.runningMean()
		}
	}
	return float64(sum) / float64(len(s))
}

// runningMean is used when Sum would wrap.
func (s Sequence) runningMean() float64 {
	var mean float64
	for i, v := range s {
		mean += (float64(v) - mean) / float64(i+1)
	}
	return mean
}

// Equal reports whether both sequences hold the same elements in order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
