package primereport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primereport/artifact"
	"github.com/hupe1980/primereport/core"
)

func TestReporter_ReportToFile(t *testing.T) {
	dir := t.TempDir()
	rep := New(func(o *Options) { o.ArtifactStore = artifact.NewFileStore(dir) })

	res, err := rep.Report(context.Background(), 1, 20, "primes.txt")
	require.NoError(t, err)
	assert.Equal(t, core.Sequence{2, 3, 5, 7, 11, 13, 17, 19}, res.Primes)

	raw, err := os.ReadFile(filepath.Join(dir, "primes.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(res.Content))
}

func TestReporter_InvalidBounds(t *testing.T) {
	rep := New(func(o *Options) { o.ArtifactStore = artifact.NewInMemoryStore() })
	_, err := rep.Report(context.Background(), 10, 1, "p")
	assert.ErrorIs(t, err, core.ErrInvalidBounds)
	names, err := rep.Store().List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestReporter_DefaultsToFileStore(t *testing.T) {
	rep := New()
	_, ok := rep.Store().(*artifact.FileStore)
	assert.True(t, ok)
}

func TestCheck(t *testing.T) {
	got := New().Check(0, 1, 2, 3, 4, 17, 18)
	assert.Equal(t, []Verdict{
		{0, false}, {1, false}, {2, true}, {3, true}, {4, false}, {17, true}, {18, false},
	}, got)
	assert.Empty(t, Check())
	assert.True(t, IsPrime(97))
}
