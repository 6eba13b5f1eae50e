package prime

import "github.com/hupe1980/primereport/core"

// IsPrime reports whether n is prime.
//
// Even numbers other than 2 are rejected up front; odd candidates are trial
// divided by 3, 5, 7, ... while i <= n/i, which is the overflow-safe form of
// i*i <= n for values near 2^64.
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n == 2:
		return true
	case n%2 == 0:
		return false
	}
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Enumerate returns every prime in b in ascending order. An inverted range
// yields an empty sequence; callers that need to reject it use b.Validate.
func Enumerate(b core.Bounds) core.Sequence {
	seq := core.Sequence{}
	if b.Start > b.End {
		return seq
	}
	for n := b.Start; ; n++ {
		if IsPrime(n) {
			seq = append(seq, n)
		}
		// break before the increment so End == MaxUint64 terminates
		if n == b.End {
			break
		}
	}
	return seq
}
