package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primereport/core"
	"github.com/hupe1980/primereport/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"PRIMEREPORT_START", "PRIMEREPORT_END", "PRIMEREPORT_ARTIFACT", "PRIMEREPORT_STORE", "PRIMEREPORT_DIR", "PRIMEREPORT_DSN", "PRIMEREPORT_LOG_LEVEL", "PRIMEREPORT_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_FileStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "primes.txt")

	out, stderr, err := execute(t, "--start", "1", "--end", "20", "--artifact", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Scanning [1, 20] (20 integers) -> primes.txt (file store)")
	assert.Contains(t, out, "Found 8 primes (sum 77, mean ")
	assert.Contains(t, out, "max 19)")
	assert.Contains(t, out, "--- primes.txt ---\n2\n3\n5\n7\n11\n13\n17\n19\n")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n", string(raw))

	assert.Contains(t, stderr, "msg=\"Operation completed\"")
	assert.Contains(t, stderr, "operation=report")
	assert.Contains(t, stderr, "store=file")
}

func TestRoot_SQLiteStoreAndList(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "reports.db")

	_, _, err := execute(t, "--store", "sqlite", "--dsn", dsn, "--artifact", "small", "--end", "10")
	require.NoError(t, err)
	_, _, err = execute(t, "--store", "sqlite", "--dsn", dsn, "--artifact", "big", "--end", "100")
	require.NoError(t, err)

	out, _, err := execute(t, "list", "--store", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
	assert.Equal(t, "big\nsmall\n", out)
}

func TestRoot_InvertedRange(t *testing.T) {
	_, _, err := execute(t, "--store", "memory", "--start", "20", "--end", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidBounds)
}

func TestRoot_EmptyRange(t *testing.T) {
	out, _, err := execute(t, "--store", "memory", "--start", "24", "--end", "28")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 0 primes")
}

func TestRoot_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, stderr, err := execute(t, "--artifact", filepath.Join(blocker, "primes.txt"), "--log-format", "json")
	require.Error(t, err)
	var we *core.StorageWriteError
	assert.ErrorAs(t, err, &we)
	assert.Contains(t, stderr, "Artifact save failed")
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "primereport.yaml")
	cfg := config.DefaultConfig()
	cfg.Range = core.NewBounds(2, 2)
	cfg.Store.Driver = config.DriverMemory
	require.NoError(t, cfg.Save(cfgPath))

	out, _, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Scanning [2, 2]")
	assert.Contains(t, out, "Found 1 primes")

	// explicit flags win over the file
	out, _, err = execute(t, "--config", cfgPath, "--end", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Scanning [2, 3]")
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--store", "s3")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "check", "0", "1", "2", "17", "18")
	require.NoError(t, err)
	assert.Equal(t, "0 is not prime\n1 is not prime\n2 is prime\n17 is prime\n18 is not prime\n", out)

	_, _, err = execute(t, "check", "-1")
	assert.Error(t, err)
	_, _, err = execute(t, "check")
	assert.Error(t, err)
}
