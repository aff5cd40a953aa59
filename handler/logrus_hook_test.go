package handler

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/richlog/core"
)

func TestLogrusHook_Fire(t *testing.T) {
	c := &captureHandler{}
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.AddHook(NewLogrusHook(c))
	denied := errors.New("denied")

	l.WithFields(logrus.Fields{"user": "ann", "attempt": 3}).WithError(denied).Warn("login failed")

	require.Len(t, c.entries, 1)
	e := c.entries[0]
	assert.Equal(t, core.WarnLevel, e.Level)
	assert.Equal(t, "login failed", e.Message)
	assert.Equal(t, []string{"attempt=3", "user=ann"}, fieldStrings(e.Fields))
	assert.Same(t, denied, e.Err)
}

func TestLogrusHook_Caller(t *testing.T) {
	c := &captureHandler{}
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetReportCaller(true)
	l.AddHook(NewLogrusHook(c))

	l.Info("with caller")

	require.Len(t, c.entries, 1)
	assert.True(t, c.entries[0].Caller.Defined)
	assert.Equal(t, "logrus_hook_test.go", c.entries[0].Caller.ShortFile)
}

func TestLogrusHook_Levels(t *testing.T) {
	assert.Equal(t, logrus.AllLevels, NewLogrusHook(&captureHandler{}).Levels())

	c := &captureHandler{}
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.AddHook(NewLogrusHook(c, logrus.ErrorLevel))

	l.Warn("skipped")
	l.Error("kept")

	require.Len(t, c.entries, 1)
	assert.Equal(t, core.ErrorLevel, c.entries[0].Level)
}
