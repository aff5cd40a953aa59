package handler

import (
	"github.com/kataras/golog"

	"github.com/philipp01105/richlog/core"
)

// NewGologHandler returns a golog.Handler that renders golog records through
// h. Register it with (*golog.Logger).Handle; records it accepts are not
// printed by golog itself.
func NewGologHandler(h Handler) golog.Handler {
	return func(l *golog.Log) bool {
		entry := core.GetEntry()
		defer core.PutEntry(entry)

		entry.Time = l.Time
		entry.Level = gologLevelToCore(l.Level)
		entry.Message = l.Message
		if !enabled(h, entry.Level) {
			return true
		}
		return h.Handle(entry) == nil
	}
}

func gologLevelToCore(level golog.Level) core.Level {
	switch level {
	case golog.FatalLevel:
		return core.FatalLevel
	case golog.ErrorLevel:
		return core.ErrorLevel
	case golog.WarnLevel:
		return core.WarnLevel
	case golog.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
