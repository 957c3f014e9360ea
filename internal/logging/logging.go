// Package logging is the small structured logger used by the fftbench
// command. The transform packages never log.
package logging

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Level represents log levels.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
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
	default:
		return "UNKNOWN"
	}
}

// ParseLevel resolves a level name (case-insensitive).
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// Fields represents structured logging fields.
type Fields map[string]any

// Logger is the interface the command logs through.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger that adds fields to every entry.
	WithFields(fields Fields) Logger

	// SetLevel sets the minimum level that is written.
	SetLevel(level Level)
}

var global atomic.Value

func init() {
	global.Store(holder{NewDefaultLogger()})
}

// holder keeps atomic.Value storing a single concrete type.
type holder struct{ Logger }

// SetGlobalLogger replaces the global logger; nil installs a NoOpLogger.
func SetGlobalLogger(l Logger) {
	if l == nil {
		l = NoOpLogger{}
	}

	global.Store(holder{l})
}

// GetGlobalLogger returns the current global logger.
func GetGlobalLogger() Logger {
	return global.Load().(holder).Logger
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...Fields)        {}
func (NoOpLogger) Info(string, ...Fields)         {}
func (NoOpLogger) Warn(string, ...Fields)         {}
func (NoOpLogger) Error(error, string, ...Fields) {}
func (n NoOpLogger) WithFields(Fields) Logger     { return n }
func (NoOpLogger) SetLevel(Level)                 {}
