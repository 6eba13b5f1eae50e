// Package logging provides a minimal logging interface and adapters for primereport.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the runner and stores use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - ReportLogger with run scoped context and report specific helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	r := primereport.New(func(o *primereport.Options) { o.Logger = logger })
//
// Arguments after the message are slog key/value pairs.
package logging
