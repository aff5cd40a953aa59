package handler

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/philipp01105/richlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Handler,
// so log/slog output can be rendered by richlog.
type SlogHandler struct {
	handler Handler
	level   core.Level
	attrs   []core.Field
	group   string
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l := slogLevelToCore(level)
	return l >= s.level && enabled(s.handler, l)
}

// Handle converts record to a core.Entry and passes it to the wrapped handler.
// An attribute holding an error becomes the entry's traceback.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		entry.Caller = core.NewCallerInfo(frame.File, frame.Line, frame.Function)
	}

	entry.Fields = append(entry.Fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		if err, ok := a.Value.Resolve().Any().(error); ok && entry.Err == nil {
			entry.Err = err
			return true
		}
		entry.Fields = appendSlogAttr(entry.Fields, s.group, a)
		return true
	})

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendSlogAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   s.attrs[:len(s.attrs):len(s.attrs)],
		group:   newGroup,
	}
}

func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendSlogAttr appends a as fields, flattening groups into dotted keys.
func appendSlogAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		prefix := group
		if a.Key != "" {
			prefix = key
		}
		for _, ga := range a.Value.Group() {
			fields = appendSlogAttr(fields, prefix, ga)
		}
		return fields
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	default:
		return append(fields, core.AnyField(key, a.Value.Any()))
	}
}
