package logger

import (
	"sync"

	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// stdout, tabular layout, default time format
	h, err := handler.NewConsoleHandler(handler.ConsoleConfig{})
	if err != nil {
		panic(err)
	}

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		WithCaller(true).
		Build()
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

// Package-level convenience functions using the default logger. They call
// output themselves so the caller resolves to the user's code.

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	if l := Default(); l.Enabled(core.DebugLevel) {
		l.output(core.DebugLevel, msg, nil, fields)
	}
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	if l := Default(); l.Enabled(core.InfoLevel) {
		l.output(core.InfoLevel, msg, nil, fields)
	}
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	if l := Default(); l.Enabled(core.WarnLevel) {
		l.output(core.WarnLevel, msg, nil, fields)
	}
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	if l := Default(); l.Enabled(core.ErrorLevel) {
		l.output(core.ErrorLevel, msg, nil, fields)
	}
}

// Exception logs msg and err's traceback using the default logger
func Exception(msg string, err error, fields ...core.Field) {
	if l := Default(); l.Enabled(core.ErrorLevel) {
		l.output(core.ErrorLevel, msg, err, fields)
	}
}

// Fatal logs a fatal message using the default logger and exits the program
func Fatal(msg string, fields ...core.Field) {
	Default().Fatal(msg, fields...)
}

// Panic logs a panic message using the default logger and panics
func Panic(msg string, fields ...core.Field) {
	Default().Panic(msg, fields...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Fatalf logs a formatted fatal message using the default logger and exits the program
func Fatalf(format string, args ...interface{}) {
	Default().Fatalf(format, args...)
}

// Panicf logs a formatted panic message using the default logger and panics
func Panicf(format string, args ...interface{}) {
	Default().Panicf(format, args...)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
