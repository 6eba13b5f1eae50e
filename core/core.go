package core

import "github.com/hupe1980/primereport/logging"

// LoggerAdapter wraps a logging.Logger and exposes convenience methods
// (LogDebug/LogInfo/LogWarn/LogError). It guarantees a non-nil logger by
// substituting a NoOpLogger when constructed with nil. Components embed it so
// their zero configuration stays silent.
type LoggerAdapter struct {
	logger logging.Logger
}

// NewLoggerAdapter constructs a LoggerAdapter with a non-nil logger.
func NewLoggerAdapter(l logging.Logger) LoggerAdapter {
	if l == nil {
		l = logging.NoOpLogger{}
	}
	return LoggerAdapter{logger: l}
}

// Logger returns the underlying logger.
func (l LoggerAdapter) Logger() logging.Logger {
	if l.logger == nil {
		return logging.NoOpLogger{}
	}
	return l.logger
}

// LogDebug logs a debug message.
func (l LoggerAdapter) LogDebug(msg string, args ...any) {
	l.Logger().Debug(msg, args...)
}

// LogInfo logs an info message.
func (l LoggerAdapter) LogInfo(msg string, args ...any) {
	l.Logger().Info(msg, args...)
}

// LogWarn logs a warning message.
func (l LoggerAdapter) LogWarn(msg string, args ...any) {
	l.Logger().Warn(msg, args...)
}

// LogError logs an error message.
func (l LoggerAdapter) LogError(msg string, args ...any) {
	l.Logger().Error(msg, args...)
}
