// Package log provides a structured logging interface for crossval evaluation runs.
//
// This package defines a minimal, slog-compatible logging interface backed by
// zerolog, with cross-validation-specific structured attributes (schemes, fold
// counts, flexibility levels, losses). The interface is implementation-agnostic
// so tests can swap in a capturing logger.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("evaluation").With(
//	    log.SchemeKey, "kfold",
//	    log.FoldsKey, 10,
//	)
//	logger.Info("evaluation started",
//	    log.OperationKey, "evaluate",
//	    log.SamplesKey, 200,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface supports method chaining through the With method, allowing
// for creation of contextual loggers with pre-populated fields. Fields are
// alternating key-value pairs, as in slog.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Used for per-fold and per-cell diagnostics; usually disabled outside
	// development.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	//
	// Example:
	//
	//	logger.Info("evaluation completed",
	//	    log.DurationMsKey, 125,
	//	    log.BestFlexibilityKey, 6,
	//	)
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Warning logs indicate recoverable situations, such as a fit failure
	// confined to a single error-matrix cell.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as a field, stack trace information
	// from cockroachdb/errors is included when available.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	//
	// Example:
	//
	//	foldLogger := logger.With(log.FoldKey, 3)
	//	foldLogger.Debug("fitting")  // automatically includes the fold index
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to avoid building expensive per-cell diagnostics that would be
	// discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// This interface allows for dependency injection and testing with different
// logger implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
