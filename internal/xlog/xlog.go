// Package xlog provides the structured logging interface used throughout the
// snid analysis core. Hosting applications may substitute their own logger
// via SetGlobalLogger; library code never imports a concrete logging backend
// directly.
package xlog

import "context"

// ANSI color codes for terminal output.
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// Level represents a log severity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Fields is a set of structured logging key/value pairs.
type Fields map[string]any

// Logger is the interface every component in this module logs through.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	Fatal(err error, msg string, fields ...Fields)

	WithFields(fields Fields) Logger
	WithContext(ctx context.Context) Logger

	SetLevel(level Level)
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger swaps the package-level logger used by WithFields/Debug/etc.
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		globalLogger = &NoOpLogger{}
	} else {
		globalLogger = logger
	}
}

// GetGlobalLogger returns the current global logger.
func GetGlobalLogger() Logger {
	return globalLogger
}

func Debug(msg string, fields ...Fields) { globalLogger.Debug(msg, fields...) }
func Info(msg string, fields ...Fields)  { globalLogger.Info(msg, fields...) }
func Warn(msg string, fields ...Fields)  { globalLogger.Warn(msg, fields...) }

func Error(err error, msg string, fields ...Fields) { globalLogger.Error(err, msg, fields...) }
func Fatal(err error, msg string, fields ...Fields) { globalLogger.Fatal(err, msg, fields...) }

func WithFields(fields Fields) Logger          { return globalLogger.WithFields(fields) }
func WithContext(ctx context.Context) Logger   { return globalLogger.WithContext(ctx) }
func SetLevel(level Level)                     { globalLogger.SetLevel(level) }

// DisableColors globally disables color output for the default logger.
func DisableColors() {
	if d, ok := globalLogger.(*DefaultLogger); ok {
		d.useColors = false
	}
}

// EnableColors globally enables color output for the default logger.
func EnableColors() {
	if d, ok := globalLogger.(*DefaultLogger); ok {
		d.useColors = true
	}
}
