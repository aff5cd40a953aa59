package handler

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/richlog/core"
)

// LogrusHook renders logrus entries through a Handler. Attach it with
// logger.AddHook and send the logger's own output to io.Discard.
type LogrusHook struct {
	handler Handler
	levels  []logrus.Level
}

var _ logrus.Hook = (*LogrusHook)(nil)

// NewLogrusHook creates a hook firing for levels (default: all levels).
func NewLogrusHook(h Handler, levels ...logrus.Level) *LogrusHook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &LogrusHook{handler: h, levels: levels}
}

// Levels implements logrus.Hook.
func (l *LogrusHook) Levels() []logrus.Level {
	return l.levels
}

// Fire implements logrus.Hook. The logrus.ErrorKey field becomes the
// entry's traceback.
func (l *LogrusHook) Fire(e *logrus.Entry) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = e.Time
	entry.Level = logrusLevelToCore(e.Level)
	entry.Message = e.Message
	if e.HasCaller() {
		entry.Caller = core.NewCallerInfo(e.Caller.File, e.Caller.Line, e.Caller.Function)
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := e.Data[k]
		if err, ok := v.(error); ok && k == logrus.ErrorKey {
			entry.Err = err
			continue
		}
		entry.Fields = append(entry.Fields, core.AnyField(k, v))
	}

	return l.handler.Handle(entry)
}

func logrusLevelToCore(level logrus.Level) core.Level {
	switch level {
	case logrus.PanicLevel:
		return core.PanicLevel
	case logrus.FatalLevel:
		return core.FatalLevel
	case logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
