// Package prime implements deterministic primality testing by trial division
// and ascending enumeration of the primes inside a core.Bounds range.
//
// Both functions are pure: no I/O, no shared state, no error path.
package prime
