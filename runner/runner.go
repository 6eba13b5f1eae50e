package runner

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/primereport/artifact"
	"github.com/hupe1980/primereport/core"
	"github.com/hupe1980/primereport/logging"
	"github.com/hupe1980/primereport/prime"
	"github.com/hupe1980/primereport/report"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// ArtifactStore receives the report. Defaults to an in-memory store.
	ArtifactStore core.ArtifactStore
	// Verify decodes the read-back artifact and requires it to match the
	// written report byte for byte.
	Verify bool
	// Logging services.
	Logger logging.Logger
}

// Result is the outcome of a successful run.
type Result struct {
	RunID    string
	Bounds   core.Bounds
	Artifact string
	// Primes is the computed sequence, in ascending order.
	Primes core.Sequence
	// Content is the raw artifact text as read back from the store.
	Content  []byte
	Verified bool
	Elapsed  time.Duration
}

// Count returns the number of primes found.
func (r *Result) Count() int { return r.Primes.Len() }

// Runner executes enumerate-and-report runs against a single store.
// Public methods are safe for concurrent use as long as concurrent runs use
// distinct artifact names.
type Runner struct {
	core.LoggerAdapter

	store  core.ArtifactStore
	verify bool
	now    func() time.Time
}

// New constructs a Runner with optional overrides.
func New(optFns ...func(o *Options)) *Runner {
	opts := Options{
		ArtifactStore: artifact.NewInMemoryStore(),
		Verify:        true,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.ArtifactStore == nil {
		opts.ArtifactStore = artifact.NewInMemoryStore()
	}

	return &Runner{
		LoggerAdapter: core.NewLoggerAdapter(opts.Logger),
		store:         opts.ArtifactStore,
		verify:        opts.Verify,
		now:           time.Now,
	}
}

// Store returns the artifact store the runner writes to.
func (r *Runner) Store() core.ArtifactStore { return r.store }

// Run scans bounds, writes the prime sequence to the named artifact, reads it
// back and returns both. The artifact is fully written before it is read.
func (r *Runner) Run(ctx context.Context, bounds core.Bounds, name string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := bounds.Validate(); err != nil {
		r.LogWarn("Run rejected", "bounds", bounds.String(), "error", err)
		return nil, err
	}
	if name == "" {
		r.LogWarn("Run rejected", "bounds", bounds.String(), "error", core.ErrInvalidArtifactName)
		return nil, fmt.Errorf("%w: empty name", core.ErrInvalidArtifactName)
	}

	runID := core.NewID()
	log := logging.ForRun(r.Logger(), runID)
	started := r.now()
	log.Info("Run started", "bounds", bounds.String(), "artifact", name)

	scanStart := r.now()
	primes := prime.Enumerate(bounds)
	logging.LogScan(log, bounds.Start, bounds.End, primes.Len(), r.now().Sub(scanStart))

	data := report.Format(primes)
	saveStart := r.now()
	if err := r.store.Save(name, data); err != nil {
		logging.LogArtifact(log, "save", name, len(data), r.now().Sub(saveStart), err)
		return nil, &core.StorageWriteError{Artifact: name, Err: err}
	}
	logging.LogArtifact(log, "save", name, len(data), r.now().Sub(saveStart), nil)

	getStart := r.now()
	content, err := r.store.Get(name)
	if err != nil {
		logging.LogArtifact(log, "get", name, 0, r.now().Sub(getStart), err)
		return nil, &core.StorageReadError{Artifact: name, Err: err}
	}
	logging.LogArtifact(log, "get", name, len(content), r.now().Sub(getStart), nil)

	res := &Result{
		RunID:    runID,
		Bounds:   bounds,
		Artifact: name,
		Primes:   primes,
		Content:  content,
	}

	if r.verify {
		if err := verify(primes, data, content); err != nil {
			log.Error("Artifact verification failed", "artifact", name, "error", err)
			return nil, &core.StorageReadError{Artifact: name, Err: err}
		}
		res.Verified = true
	}

	res.Elapsed = r.now().Sub(started)
	log.Info("Run completed", "prime_count", primes.Len(), "verified", res.Verified, "duration", res.Elapsed)
	return res, nil
}

// verify checks the read-back content against the written report. Decoding
// runs first so a malformed line is reported with its line number.
func verify(want core.Sequence, written, content []byte) error {
	got, err := report.Parse(content)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrArtifactMismatch, err)
	}
	if !got.Equal(want) {
		return fmt.Errorf("%w: wrote %d values, read %d", core.ErrArtifactMismatch, want.Len(), got.Len())
	}
	if !bytes.Equal(content, written) {
		return fmt.Errorf("%w: content differs from the written report (wrote %d bytes, read %d)", core.ErrArtifactMismatch, len(written), len(content))
	}
	return nil
}
