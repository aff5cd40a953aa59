package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/handler"
	"github.com/philipp01105/richlog/render"
)

func newTestHandler(t testing.TB, buf *bytes.Buffer) *handler.ConsoleHandler {
	t.Helper()
	h, err := handler.NewConsoleHandler(handler.ConsoleConfig{
		Console: console.New(console.Config{Writer: buf, Width: 200, NoColor: true, DisableHyperlinks: true}),
	})
	if err != nil {
		t.Fatalf("NewConsoleHandler() error = %v", err)
	}
	return h
}

func TestLogger_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithHandler(newTestHandler(t, &buf)).
		WithLevel(InfoLevel).
		Build()

	logger.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("Debug message was logged when level is Info")
	}

	tests := []struct {
		log   func(string, ...core.Field)
		msg   string
		level string
	}{
		{logger.Info, "info message", "INFO"},
		{logger.Warn, "warn message", "WARNING"},
		{logger.Error, "error message", "ERROR"},
	}
	for _, tt := range tests {
		buf.Reset()
		tt.log(tt.msg)
		if !strings.Contains(buf.String(), tt.msg) || !strings.Contains(buf.String(), tt.level) {
			t.Errorf("Expected %q at %s in output, got: %s", tt.msg, tt.level, buf.String())
		}
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithHandler(newTestHandler(t, &buf)).
		WithFields(String("app", "test")).
		Build()

	logger.Info("test",
		String("str", "value"),
		Int("int", 42),
		Bool("bool", true),
		Float64("float", 3.14),
	)

	output := buf.String()
	if want := "test app=test str=value int=42 bool=true float=3.14"; !strings.Contains(output, want) {
		t.Errorf("Expected %q in output, got: %s", want, output)
	}
}

func TestLogger_FormattedLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().WithHandler(newTestHandler(t, &buf)).Build()

	logger.Infof("User %s logged in with ID %d", "alice", 123)

	if !strings.Contains(buf.String(), "User alice logged in with ID 123") {
		t.Errorf("Expected formatted message in output, got: %s", buf.String())
	}
}

func TestLogger_ImmutableWith(t *testing.T) {
	var buf bytes.Buffer
	parent := NewBuilder().
		WithHandler(newTestHandler(t, &buf)).
		WithFields(String("parent", "value")).
		Build()

	child := parent.With(String("child", "value"))

	parent.Info("parent message")
	parentOutput := buf.String()
	if !strings.Contains(parentOutput, "parent=value") {
		t.Error("Parent logger should have parent field")
	}
	if strings.Contains(parentOutput, "child=value") {
		t.Error("Parent logger should not have child field")
	}

	buf.Reset()

	child.Info("child message")
	childOutput := buf.String()
	if !strings.Contains(childOutput, "parent=value child=value") {
		t.Errorf("Child logger should have both fields, got: %s", childOutput)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().
		WithHandler(newTestHandler(t, &buf)).
		WithCaller(true).
		Build()

	log.Info("where am I")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("Expected caller path in output, got: %s", buf.String())
	}
}

func TestLogger_CallerSkip(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().
		WithHandler(newTestHandler(t, &buf)).
		WithCaller(true).
		WithCallerSkip(1).
		Build()

	logFromHelper(log)

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("Expected helper's caller in output, got: %s", buf.String())
	}
}

func logFromHelper(l *Logger) {
	l.Info("from helper")
}

func TestLogger_Exception(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().WithHandler(newTestHandler(t, &buf)).Build()

	log.Exception("request failed", errors.New("connection reset"))

	output := buf.String()
	if !strings.Contains(output, "request failed") || !strings.Contains(output, "connection reset") {
		t.Errorf("Expected message and traceback, got: %s", output)
	}
	if !strings.Contains(output, "TestLogger_Exception") {
		t.Errorf("Expected stack trace in output, got: %s", output)
	}
}

func TestLogger_FluidHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := handler.NewConsoleHandler(handler.ConsoleConfig{
		Console:  console.New(console.Config{Writer: &buf, Width: 30, SoftWrap: true, NoColor: true}),
		Layout:   render.LayoutFluid,
		HideTime: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	log := NewBuilder().WithHandler(h).Build()

	log.Warn("low disk", Int("free", 2))

	if buf.String() != "WARNING  low disk free=2\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_NoHandler(t *testing.T) {
	log := NewBuilder().Build()
	if log.Enabled(ErrorLevel) {
		t.Error("Logger without handler should not be enabled")
	}
	log.Error("dropped")
	if err := log.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().
		WithHandler(newTestHandler(t, &buf)).
		WithLevel(DebugLevel).
		Build()

	exitCode := -1
	origExit := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = origExit }()

	log.Fatal("fatal error", String("key", "value"))

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "CRITICAL") || !strings.Contains(buf.String(), "fatal error") {
		t.Errorf("Expected critical line in output, got: %s", buf.String())
	}
}

func TestLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().
		WithHandler(newTestHandler(t, &buf)).
		WithLevel(DebugLevel).
		Build()

	defer func() {
		r := recover()
		if r != "panic message" {
			t.Errorf("Expected panic with 'panic message', got: %v", r)
		}
		if !strings.Contains(buf.String(), "PANIC") {
			t.Errorf("Expected 'PANIC' in output, got: %s", buf.String())
		}
	}()

	log.Panic("panic message")
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := Default()
	defer SetDefault(orig)

	SetDefault(NewBuilder().
		WithHandler(newTestHandler(t, &buf)).
		WithCaller(true).
		Build())

	Warn("from package", String("k", "v"))

	output := buf.String()
	if !strings.Contains(output, "from package k=v") {
		t.Errorf("Expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "logger_test.go:") {
		t.Errorf("Package-level call should report the caller, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":    DebugLevel,
		"WARNING":  WarnLevel,
		"FATAL":    FatalLevel,
		"critical": FatalLevel,
		"PANIC":    PanicLevel,
		"bogus":    InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
