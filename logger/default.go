package logger

import "sync"

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Console-only, unfiltered, no rank tagging.
	defaultLogger, _ = New("root")
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Print emits a raw message using the default logger
func Print(msg string, opts ...LogOption) {
	Default().Print(msg, opts...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, opts ...LogOption) {
	Default().Debug(msg, opts...)
}

// Info logs an info message using the default logger
func Info(msg string, opts ...LogOption) {
	Default().Info(msg, opts...)
}

// Warning logs a warning message using the default logger
func Warning(msg string, opts ...LogOption) {
	Default().Warning(msg, opts...)
}

// Error logs an error message using the default logger
func Error(msg string, opts ...LogOption) {
	Default().Error(msg, opts...)
}

// Critical logs a critical message using the default logger
func Critical(msg string, opts ...LogOption) {
	Default().Critical(msg, opts...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) {
	Default().Warningf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...interface{}) {
	Default().Criticalf(format, args...)
}

// Flush flushes the default logger's sinks
func Flush() error {
	return Default().Flush()
}

// Close closes the default logger's file sink
func Close() error {
	return Default().Close()
}
