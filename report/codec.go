package report

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/primereport/core"
)

// Encode writes seq to w, one decimal value per line. The output is buffered
// and flushed before Encode returns.
func Encode(w io.Writer, seq core.Sequence) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 20)
	for _, v := range seq {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("encode %d: %w", v, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// Format returns the artifact bytes for seq.
func Format(seq core.Sequence) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail
	_ = Encode(&buf, seq)
	return buf.Bytes()
}

// Decode reads an artifact from r. A trailing '\r' on a line is tolerated;
// blank lines and non-decimal content fail with ErrMalformedLine.
func Decode(r io.Reader) (core.Sequence, error) {
	seq := core.Sequence{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line, text)
		}
		seq = append(seq, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan report: %w", err)
	}
	return seq, nil
}

// Parse decodes artifact bytes.
func Parse(data []byte) (core.Sequence, error) {
	return Decode(bytes.NewReader(data))
}
