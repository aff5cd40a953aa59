package handler

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/richlog/core"
)

func TestGologHandler(t *testing.T) {
	c := &captureHandler{}
	var out bytes.Buffer
	l := golog.New()
	l.SetOutput(&out)
	l.SetLevel("debug")
	l.Handle(NewGologHandler(c))

	l.Warn("careful")
	l.Debug("details")

	require.Len(t, c.entries, 2)
	assert.Equal(t, core.WarnLevel, c.entries[0].Level)
	assert.Equal(t, "careful", c.entries[0].Message)
	assert.Equal(t, core.DebugLevel, c.entries[1].Level)
	assert.Empty(t, out.String(), "handled records must not reach golog's own output")
}

func TestGologHandler_Filtered(t *testing.T) {
	c := &captureHandler{level: core.ErrorLevel}
	var out bytes.Buffer
	l := golog.New()
	l.SetOutput(&out)
	l.Handle(NewGologHandler(c))

	l.Info("quiet")

	assert.Empty(t, c.entries)
	assert.Empty(t, out.String())
}
