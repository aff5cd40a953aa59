package handler

import (
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/richlog/core"
)

type zapCore struct {
	zapcore.LevelEnabler
	handler Handler
	fields  []core.Field
}

// NewZapCore returns a zapcore.Core that renders zap entries through h.
// Error fields become the entry's traceback instead of a key=value pair.
//
//	logger := zap.New(handler.NewZapCore(h, zapcore.DebugLevel), zap.AddCaller())
func NewZapCore(h Handler, enab zapcore.LevelEnabler) zapcore.Core {
	return &zapCore{LevelEnabler: enab, handler: h}
}

func (c *zapCore) Enabled(level zapcore.Level) bool {
	return c.LevelEnabler.Enabled(level) && enabled(c.handler, zapLevelToCore(level))
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &zapCore{
		LevelEnabler: c.LevelEnabler,
		handler:      c.handler,
		fields:       make([]core.Field, len(c.fields), len(c.fields)+len(fields)),
	}
	copy(clone.fields, c.fields)
	clone.fields, _ = appendZapFields(clone.fields, fields)
	return clone
}

func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = zapLevelToCore(ent.Level)
	entry.Message = ent.Message
	if ent.Caller.Defined {
		entry.Caller = core.NewCallerInfo(ent.Caller.File, ent.Caller.Line, ent.Caller.Function)
	}
	if ent.LoggerName != "" {
		entry.Fields = append(entry.Fields, core.Field{Key: "logger", Type: core.StringType, Str: ent.LoggerName})
	}
	entry.Fields = append(entry.Fields, c.fields...)
	entry.Fields, entry.Err = appendZapFields(entry.Fields, fields)

	return c.handler.Handle(entry)
}

func (c *zapCore) Sync() error {
	return nil
}

// appendZapFields converts zap fields in order. The first error field is
// returned separately.
func appendZapFields(dst []core.Field, fields []zapcore.Field) ([]core.Field, error) {
	var firstErr error
	for _, f := range fields {
		if f.Type == zapcore.ErrorType && firstErr == nil {
			if err, ok := f.Interface.(error); ok {
				firstErr = err
				continue
			}
		}
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = append(dst, core.AnyField(k, enc.Fields[k]))
		}
	}
	return dst, firstErr
}

func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.FatalLevel:
		return core.FatalLevel
	case level >= zapcore.DPanicLevel:
		return core.PanicLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
