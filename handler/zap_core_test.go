package handler

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/render"
)

// captureHandler keeps copies of the entries it is handed.
type captureHandler struct {
	mu      sync.Mutex
	level   core.Level
	entries []core.Entry
}

func (c *captureHandler) Handle(e *core.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *e
	cp.Fields = append([]core.Field(nil), e.Fields...)
	c.entries = append(c.entries, cp)
	return nil
}

func (c *captureHandler) Close() error { return nil }

func (c *captureHandler) Enabled(level core.Level) bool { return level >= c.level }

func fieldStrings(fields []core.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.String())
	}
	return out
}

func TestZapCore_Write(t *testing.T) {
	c := &captureHandler{}
	logger := zap.New(NewZapCore(c, zapcore.DebugLevel)).Named("svc")
	boom := errors.New("boom")

	logger.With(zap.String("req", "r1")).Warn("disk low", zap.Int("free", 2), zap.Error(boom))

	require.Len(t, c.entries, 1)
	e := c.entries[0]
	assert.Equal(t, core.WarnLevel, e.Level)
	assert.Equal(t, "disk low", e.Message)
	assert.Equal(t, []string{"logger=svc", "req=r1", "free=2"}, fieldStrings(e.Fields))
	assert.Same(t, boom, e.Err)
	assert.False(t, e.Time.IsZero())
}

func TestZapCore_Levels(t *testing.T) {
	c := &captureHandler{level: core.ErrorLevel}
	zc := NewZapCore(c, zapcore.DebugLevel)

	assert.False(t, zc.Enabled(zapcore.WarnLevel), "handler level should gate the core")
	assert.True(t, zc.Enabled(zapcore.ErrorLevel))

	tests := []struct {
		in   zapcore.Level
		want core.Level
	}{
		{zapcore.DebugLevel, core.DebugLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.WarnLevel, core.WarnLevel},
		{zapcore.ErrorLevel, core.ErrorLevel},
		{zapcore.DPanicLevel, core.PanicLevel},
		{zapcore.PanicLevel, core.PanicLevel},
		{zapcore.FatalLevel, core.FatalLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, zapLevelToCore(tt.in), tt.in.String())
	}
}

func TestZapCore_RendersThroughConsole(t *testing.T) {
	var buf bytes.Buffer
	c := console.New(console.Config{Writer: &buf, Width: 80, SoftWrap: true, NoColor: true})
	h, err := NewConsoleHandler(ConsoleConfig{Console: c, Layout: render.LayoutFluid, HideTime: true, HidePath: true})
	require.NoError(t, err)

	zap.New(NewZapCore(h, zapcore.InfoLevel)).Info("ready", zap.Int("port", 8080))

	assert.Equal(t, "INFO     ready port=8080\n", buf.String())
}
