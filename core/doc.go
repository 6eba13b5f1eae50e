// Package core provides the foundational domain types and contracts used by
// primereport. It defines the core abstractions for:
//
//   - Bounds (the inclusive integer range a run scans)
//   - Sequence (the ascending list of primes a run produces)
//   - ArtifactStore (pluggable persistence for report artifacts)
//   - The storage error taxonomy surfaced by a run
//
// The package keeps implementation concerns (the primality algorithm, the
// artifact codec, concrete stores, run orchestration) out of scope, exposing
// small types and interfaces so backends can be swapped in tests or
// production.
package core
