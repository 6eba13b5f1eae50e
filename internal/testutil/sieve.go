package testutil

// Sieve returns a table where table[n] reports whether n is prime for every
// n in [0, limit], computed with the sieve of Eratosthenes. It is used as an
// independent oracle for trial division.
func Sieve(limit uint64) []bool {
	table := make([]bool, limit+1)
	for n := uint64(2); n <= limit; n++ {
		table[n] = true
	}
	for i := uint64(2); i*i <= limit; i++ {
		if !table[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			table[j] = false
		}
	}
	return table
}

// SievePrimes lists the primes in [lo, hi] using Sieve.
func SievePrimes(lo, hi uint64) []uint64 {
	table := Sieve(hi)
	var out []uint64
	for n := lo; n <= hi; n++ {
		if table[n] {
			out = append(out, n)
		}
	}
	return out
}
