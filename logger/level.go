package logger

import (
	"github.com/philipp01105/richlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
)

// ParseLevel converts a string to a Level. Unknown names yield InfoLevel.
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
