// Package logging decouples the application from the underlying logging
// framework. Packages take a Logger (or grab the shared default) and log
// structured fields instead of formatted strings.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

var (
	defaultLogger Logger
	defaultOnce   sync.Once
)

// GetLogger returns the shared default logger, creating it on first use.
func GetLogger() Logger {
	defaultOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = NewLogrusAdapterFromLogger(logrus.StandardLogger())
		}
	})
	return defaultLogger
}

// SetAllLogLevels forces the given level on the global logrus instance, which
// every adapter created from it inherits.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}
