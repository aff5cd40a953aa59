package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// output and the exported method sit between GetCaller and the call site
const defaultCallerSkip = 2

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel,
		callerSkip: defaultCallerSkip,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information. The caller becomes the path
// column of the rendered line.
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip skips extra stack frames when resolving the caller, for
// helpers that wrap the Logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = defaultCallerSkip + skip
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	fields := make([]core.Field, len(b.fields))
	copy(fields, b.fields)
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		fields:        fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	clone := *l
	clone.fields = newFields
	return &clone
}

// Enabled reports whether a message at level would be handed to the handler
func (l *Logger) Enabled(level core.Level) bool {
	return l.handler != nil && level >= l.level
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.output(level, msg, nil, fields)
}

// output builds the entry and hands it to the handler. It must be called
// directly from the exported method the user called.
func (l *Logger) output(level core.Level, msg string, err error, fields []core.Field) {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = time.Now()
	entry.Level = level
	entry.Message = msg
	entry.Err = err

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	// Handlers report their own failures; a log call has nowhere to return one.
	_ = l.handler.Handle(entry)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.output(core.DebugLevel, msg, nil, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.output(core.InfoLevel, msg, nil, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.output(core.WarnLevel, msg, nil, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.output(core.ErrorLevel, msg, nil, fields)
}

// Exception logs msg at error level with err rendered as a traceback
// below the message.
func (l *Logger) Exception(msg string, err error, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.output(core.ErrorLevel, msg, err, fields)
}

// Fatal logs a fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	if l.handler != nil {
		l.output(core.FatalLevel, msg, nil, fields)
	}
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	if l.handler != nil {
		l.output(core.PanicLevel, msg, nil, fields)
	}
	panic(msg)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.output(core.DebugLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.output(core.InfoLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.output(core.WarnLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.output(core.ErrorLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Fatalf logs a fatal message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	if l.handler != nil {
		l.output(core.FatalLevel, fmt.Sprintf(format, args...), nil, nil)
	}
	osExit(1)
}

// Panicf logs a panic message with formatting and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.handler != nil {
		l.output(core.PanicLevel, msg, nil, nil)
	}
	panic(msg)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
