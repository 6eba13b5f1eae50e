// Package runner implements the enumerate-and-report run for primereport.
//
// A Runner owns one artifact store for the duration of each run and executes
// the steps strictly in order:
//
//  1. validate the bound range and artifact name
//  2. enumerate the primes in the range
//  3. encode and save the artifact (create or truncate)
//  4. read the artifact back
//  5. optionally decode the read-back and compare it to the sequence
//
// Storage failures are surfaced as *core.StorageWriteError or
// *core.StorageReadError carrying the underlying cause. Nothing is retried.
//
// See runner.go for the operational implementation details.
package runner
