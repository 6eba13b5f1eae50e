// Package primereport provides a high-level façade over the prime enumerator,
// the report codec and the artifact stores. Most applications interact with
// this package by:
//  1. Creating a Reporter via New() (optionally overriding the default store and logger)
//  2. Calling Report to enumerate a range, persist the artifact and read it back
//  3. Calling Check for ad-hoc primality verdicts
//
// The façade delegates the run itself to runner.Runner while keeping setup
// concise. Defaults write to the current directory with logging disabled.
package primereport

import (
	"context"

	"github.com/hupe1980/primereport/artifact"
	"github.com/hupe1980/primereport/core"
	"github.com/hupe1980/primereport/logging"
	"github.com/hupe1980/primereport/prime"
	"github.com/hupe1980/primereport/runner"
)

// Options configures the Reporter instance.
type Options struct {
	// ArtifactStore receives reports (defaults to a FileStore rooted at ".").
	ArtifactStore core.ArtifactStore

	// Verify decodes every read-back artifact and compares it with the
	// computed sequence before Report returns.
	Verify bool

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Reporter is the high-level façade aggregating the runner and its store.
type Reporter struct {
	opts   Options
	runner *runner.Runner
}

// New creates a Reporter with optional overrides.
func New(optFns ...func(o *Options)) *Reporter {
	opts := Options{
		ArtifactStore: artifact.NewFileStore("."),
		Verify:        true,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	r := runner.New(func(o *runner.Options) {
		o.ArtifactStore = opts.ArtifactStore
		o.Verify = opts.Verify
		o.Logger = opts.Logger
	})

	return &Reporter{opts: opts, runner: r}
}

// Store returns the configured artifact store.
func (p *Reporter) Store() core.ArtifactStore { return p.opts.ArtifactStore }

// Report enumerates the primes in [start, end], writes them to the named
// artifact and reads the artifact back. start > end fails with
// core.ErrInvalidBounds.
func (p *Reporter) Report(ctx context.Context, start, end uint64, name string) (*runner.Result, error) {
	return p.runner.Run(ctx, core.NewBounds(start, end), name)
}

// Verdict is the primality answer for one number.
type Verdict struct {
	N     uint64
	Prime bool
}

// Check returns one verdict per input, in input order.
func (p *Reporter) Check(ns ...uint64) []Verdict {
	return Check(ns...)
}

// Check returns one verdict per input, in input order.
func Check(ns ...uint64) []Verdict {
	out := make([]Verdict, len(ns))
	for i, n := range ns {
		out[i] = Verdict{N: n, Prime: prime.IsPrime(n)}
	}
	return out
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool { return prime.IsPrime(n) }
