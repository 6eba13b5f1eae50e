package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.entries = append(l.entries, "debug:"+msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.entries = append(l.entries, "info:"+msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.entries = append(l.entries, "warn:"+msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.entries = append(l.entries, "error:"+msg) }

func TestLoggerAdapter_NilFallsBackToNoOp(t *testing.T) {
	a := NewLoggerAdapter(nil)
	assert.NotNil(t, a.Logger())
	// must not panic
	a.LogDebug("d")
	a.LogInfo("i")
	a.LogWarn("w")
	a.LogError("e")

	var zero LoggerAdapter
	assert.NotNil(t, zero.Logger())
	zero.LogInfo("zero value is usable")
}

func TestLoggerAdapter_Delegates(t *testing.T) {
	rec := &recordingLogger{}
	a := NewLoggerAdapter(rec)
	a.LogDebug("d")
	a.LogInfo("i")
	a.LogWarn("w")
	a.LogError("e")
	assert.Equal(t, []string{"debug:d", "info:i", "warn:w", "error:e"}, rec.entries)
	assert.Same(t, rec, a.Logger())
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Len(t, id, 36)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
