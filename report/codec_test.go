package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primereport/core"
	"github.com/hupe1980/primereport/prime"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n", string(Format(core.Sequence{2, 3, 5, 7, 11, 13, 17, 19})))
	assert.Equal(t, "2\n", string(Format(core.Sequence{2})))
	assert.Empty(t, Format(nil))
	assert.Equal(t, "18446744073709551557\n", string(Format(core.Sequence{18446744073709551557})))
}

func TestFormat_Idempotent(t *testing.T) {
	seq := prime.Enumerate(core.NewBounds(1, 100))
	assert.True(t, bytes.Equal(Format(seq), Format(seq)))
}

func TestRoundTrip(t *testing.T) {
	for _, b := range []core.Bounds{
		core.NewBounds(1, 20),
		core.NewBounds(1, 100),
		core.NewBounds(2, 2),
		core.NewBounds(24, 28),
	} {
		seq := prime.Enumerate(b)
		got, err := Parse(Format(seq))
		require.NoError(t, err, "bounds %s", b)
		if diff := cmp.Diff(seq, got); diff != "" {
			t.Fatalf("round trip %s mismatch (-want +got):\n%s", b, diff)
		}
	}
}

func TestDecode_ToleratesCRLF(t *testing.T) {
	got, err := Parse([]byte("2\r\n3\r\n"))
	require.NoError(t, err)
	assert.Equal(t, core.Sequence{2, 3}, got)
}

func TestDecode_Malformed(t *testing.T) {
	for _, in := range []string{"2\n\n3\n", "2\nx\n", "-3\n", "1.5\n", " 2\n"} {
		_, err := Parse([]byte(in))
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrMalformedLine), "input %q: %v", in, err)
	}
	_, err := Parse([]byte("2\nx\n"))
	assert.Contains(t, err.Error(), "line 2")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_PropagatesWriterError(t *testing.T) {
	err := Encode(failWriter{}, core.Sequence{2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
