// Package testutil contains helpers used across tests to reduce boilerplate
// when checking primes and exercising artifact stores: a sieve oracle and a
// fault-injecting ArtifactStore built with a fluent builder. They are not
// intended for production usage.
package testutil
