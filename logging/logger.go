package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a case-insensitive level name into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "", "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger defines the minimal logging interface for primereport.
// This allows users to provide their own logger implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// RunLogger is implemented by loggers that offer report specific helpers.
// ReportLogger implements it.
type RunLogger interface {
	Logger
	LogScan(start, end uint64, found int, dur time.Duration)
	LogArtifact(op, name string, size int, dur time.Duration, err error)
}

// ForRun scopes l to a run. A *ReportLogger is cloned via WithRun; any other
// logger gets a run_id attribute prepended to each record.
func ForRun(l Logger, runID string) Logger {
	if rl, ok := l.(*ReportLogger); ok {
		return rl.WithRun(runID)
	}
	return runScoped{inner: l, runID: runID}
}

type runScoped struct {
	inner Logger
	runID string
}

func (s runScoped) with(args []any) []any {
	return append([]any{"run_id", s.runID}, args...)
}

func (s runScoped) Debug(msg string, args ...any) { s.inner.Debug(msg, s.with(args)...) }
func (s runScoped) Info(msg string, args ...any)  { s.inner.Info(msg, s.with(args)...) }
func (s runScoped) Warn(msg string, args ...any)  { s.inner.Warn(msg, s.with(args)...) }
func (s runScoped) Error(msg string, args ...any) { s.inner.Error(msg, s.with(args)...) }

// LogScan records a completed scan through l, using its own LogScan when l
// is a RunLogger.
func LogScan(l Logger, start, end uint64, found int, dur time.Duration) {
	if rl, ok := l.(RunLogger); ok {
		rl.LogScan(start, end, found, dur)
		return
	}
	l.Info("Scan completed", "start", start, "end", end, "prime_count", found, "duration", dur)
}

// LogArtifact records a store operation through l, using its own LogArtifact
// when l is a RunLogger.
func LogArtifact(l Logger, op, name string, size int, dur time.Duration, err error) {
	if rl, ok := l.(RunLogger); ok {
		rl.LogArtifact(op, name, size, dur, err)
		return
	}
	args := []any{"op", op, "artifact", name, "bytes", size, "duration", dur}
	if err != nil {
		l.Error("Artifact "+op+" failed", append(args, "error", err.Error())...)
		return
	}
	l.Debug("Artifact "+op+" completed", args...)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// ReportLogger wraps slog.Logger adding contextual cloning helpers and
// report specific convenience methods. It is cheap to copy via With* methods.
type ReportLogger struct {
	logger    *slog.Logger
	level     LogLevel
	context   map[string]any
	component string
	runID     string
}

// LoggerConfig configures construction of a ReportLogger.
type LoggerConfig struct {
	Level       LogLevel
	Format      string // json or text
	Output      io.Writer
	AddSource   bool
	Component   string
	RunID       string
	CustomAttrs map[string]any
}

// DefaultLoggerConfig returns a baseline text info level configuration
// writing to stderr, which keeps stdout free for the report itself.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "text", Output: os.Stderr, CustomAttrs: map[string]any{}}
}

// NewLogger builds a ReportLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *ReportLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	ctx := make(map[string]any, len(cfg.CustomAttrs))
	for k, v := range cfg.CustomAttrs {
		ctx[k] = v
	}
	return &ReportLogger{logger: slog.New(handler), level: cfg.Level, context: ctx, component: cfg.Component, runID: cfg.RunID}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *ReportLogger) clone() *ReportLogger {
	nl := *l
	nl.context = make(map[string]any, len(l.context))
	for k, v := range l.context {
		nl.context[k] = v
	}
	return &nl
}

// WithContext adds a key/value attribute that will be attached to every log entry.
func (l *ReportLogger) WithContext(key string, value any) *ReportLogger {
	nl := l.clone()
	nl.context[key] = value
	return nl
}

// WithComponent sets the logical component (runner, store, cli, etc.).
func (l *ReportLogger) WithComponent(c string) *ReportLogger {
	nl := l.clone()
	nl.component = c
	return nl
}

// WithRun attaches a run identifier.
func (l *ReportLogger) WithRun(runID string) *ReportLogger {
	nl := l.clone()
	nl.runID = runID
	return nl
}

func (l *ReportLogger) buildAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(l.context)+2)
	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if l.runID != "" {
		attrs = append(attrs, slog.String("run_id", l.runID))
	}
	for k, v := range l.context {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

func (l *ReportLogger) log(level slog.Level, allowed bool, msg string, args ...any) {
	if !allowed {
		return
	}
	attrs := l.buildAttrs()
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.AddAttrs(attrs...)
	r.Add(args...)
	_ = l.logger.Handler().Handle(context.Background(), r)
}

// Debug logs at debug level.
func (l *ReportLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args...)
}

// Info logs at info level.
func (l *ReportLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *ReportLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args...)
}

// Error logs at error level.
func (l *ReportLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args...)
}

// LogScan records the outcome of scanning a bound range.
func (l *ReportLogger) LogScan(start, end uint64, found int, dur time.Duration) {
	l.Info("Scan completed",
		slog.Uint64("start", start),
		slog.Uint64("end", end),
		slog.Int("prime_count", found),
		slog.Duration("duration", dur),
	)
}

// LogArtifact records a store operation (save or get) on an artifact.
func (l *ReportLogger) LogArtifact(op, name string, size int, dur time.Duration, err error) {
	args := []any{
		slog.String("op", op),
		slog.String("artifact", name),
		slog.Int("bytes", size),
		slog.Duration("duration", dur),
	}
	if err != nil {
		l.Error("Artifact "+op+" failed", append(args, slog.String("error", err.Error()))...)
		return
	}
	l.Debug("Artifact "+op+" completed", args...)
}

// StartTimer returns a closure that logs the elapsed duration when invoked.
func (l *ReportLogger) StartTimer(op string) func() {
	start := time.Now()
	return func() { l.Info("Operation completed", "operation", op, "duration", time.Since(start)) }
}

var _ RunLogger = (*ReportLogger)(nil)

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// NewSlogLogger creates a new ReportLogger with the specified configuration.
func NewSlogLogger(level LogLevel, format string, addSource bool) *ReportLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	cfg.AddSource = addSource
	return NewLogger(cfg)
}
