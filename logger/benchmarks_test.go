package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/handler"
	"github.com/philipp01105/richlog/render"
)

func newBenchLogger(b *testing.B, layout render.Layout) *Logger {
	b.Helper()
	h, err := handler.NewConsoleHandler(handler.ConsoleConfig{
		Console: console.New(console.Config{Writer: io.Discard, Width: 120, SoftWrap: layout == render.LayoutFluid, NoColor: true}),
		Layout:  layout,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = h.Close() })
	return NewBuilder().WithHandler(h).WithLevel(InfoLevel).Build()
}

// BenchmarkInfoTabular benchmarks Info() through the grid layout.
func BenchmarkInfoTabular(b *testing.B) {
	logger := newBenchLogger(b, render.LayoutTabular)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message", String("key1", "value1"), String("key2", "value2"))
	}
}

// BenchmarkInfoFluid benchmarks Info() through the single-line layout.
func BenchmarkInfoFluid(b *testing.B) {
	logger := newBenchLogger(b, render.LayoutFluid)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message", String("key1", "value1"), String("key2", "value2"))
	}
}

// BenchmarkFilteredDebug benchmarks Debug() when level is Info (should be filtered).
// Target: <10 ns/op, 0 allocs/op, 0 B/op
func BenchmarkFilteredDebug(b *testing.B) {
	logger := newBenchLogger(b, render.LayoutTabular)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Debug("debug message", String("key", "value"))
	}
}
