package logger

import (
	"sync"

	"github.com/philipp01105/slug/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Default returns the process-wide logger. The first call creates a
// console logger at core.DefaultLevel unless SetDefault installed one.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(core.DefaultLevel)
	}
	return defaultLogger
}

// SetDefault installs l as the process-wide logger and returns the one
// it replaces, which may be nil. The caller owns the returned logger.
func SetDefault(l *Logger) *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultLogger
	defaultLogger = l
	return prev
}

// Shutdown closes the process-wide logger and forgets it. Call it after
// the last use; a later Default call creates a fresh console logger.
func Shutdown() error {
	defaultMu.Lock()
	l := defaultLogger
	defaultLogger = nil
	defaultMu.Unlock()

	if l == nil {
		return nil
	}
	return l.Close()
}

// Package-level convenience functions using the default logger

// Trace logs a trace message using the default logger
func Trace(parts ...any) {
	Default().Trace(parts...)
}

// Info logs an info message using the default logger
func Info(parts ...any) {
	Default().Info(parts...)
}

// Warning logs a warning message using the default logger
func Warning(parts ...any) {
	Default().Warning(parts...)
}

// Error logs an error message using the default logger
func Error(parts ...any) {
	Default().Error(parts...)
}

// Fatal logs a fatal message using the default logger. It does not exit.
func Fatal(parts ...any) {
	Default().Fatal(parts...)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	Default().Tracef(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...any) {
	Default().Warningf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	Default().Errorf(format, args...)
}

// Fatalf logs a formatted fatal message using the default logger. It does not exit.
func Fatalf(format string, args ...any) {
	Default().Fatalf(format, args...)
}
