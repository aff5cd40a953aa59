package handler

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/philipp01105/richlog/core"
)

// ZerologWriter decodes zerolog's JSON events and renders them through a
// Handler. Use it as the output of a zerolog.Logger:
//
//	log := zerolog.New(handler.NewZerologWriter(h)).With().Timestamp().Caller().Logger()
type ZerologWriter struct {
	handler Handler
}

// NewZerologWriter creates a writer feeding h.
func NewZerologWriter(h Handler) *ZerologWriter {
	return &ZerologWriter{handler: h}
}

// Write implements io.Writer. p holds one JSON event per line.
func (w *ZerologWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimSpace(p), []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		if err := w.writeEvent(line); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (w *ZerologWriter) writeEvent(line []byte) error {
	var evt map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	if err := dec.Decode(&evt); err != nil {
		return errors.Wrap(err, "handler: decode zerolog event")
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = core.InfoLevel
	if s, ok := evt[zerolog.LevelFieldName].(string); ok {
		if lvl, err := zerolog.ParseLevel(s); err == nil {
			entry.Level = zerologLevelToCore(lvl)
		}
	}
	if !enabled(w.handler, entry.Level) {
		return nil
	}
	if t, ok := zerologTime(evt[zerolog.TimestampFieldName]); ok {
		entry.Time = t
	}
	if msg, ok := evt[zerolog.MessageFieldName].(string); ok {
		entry.Message = msg
	}
	if caller, ok := evt[zerolog.CallerFieldName].(string); ok {
		entry.Caller = parseCaller(caller)
	}
	if msg, ok := evt[zerolog.ErrorFieldName].(string); ok {
		entry.Err = errors.New(msg)
	}

	keys := make([]string, 0, len(evt))
	for k := range evt {
		switch k {
		case zerolog.LevelFieldName, zerolog.TimestampFieldName, zerolog.MessageFieldName,
			zerolog.CallerFieldName, zerolog.ErrorFieldName:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		entry.Fields = append(entry.Fields, zerologField(k, evt[k]))
	}

	return w.handler.Handle(entry)
}

func zerologField(key string, v interface{}) core.Field {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return core.Field{Key: key, Type: core.Int64Type, Int64: i}
		}
		if f, err := n.Float64(); err == nil {
			return core.Field{Key: key, Type: core.Float64Type, Float64: f}
		}
	}
	return core.AnyField(key, v)
}

func zerologTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		format := zerolog.TimeFieldFormat
		if format == "" || strings.HasPrefix(format, "UNIX") {
			format = time.RFC3339
		}
		parsed, err := time.Parse(format, t)
		return parsed, err == nil
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return time.Time{}, false
		}
		switch zerolog.TimeFieldFormat {
		case zerolog.TimeFormatUnixMs:
			return time.UnixMilli(n), true
		case zerolog.TimeFormatUnixMicro:
			return time.UnixMicro(n), true
		case zerolog.TimeFormatUnixNano:
			return time.Unix(0, n), true
		default:
			return time.Unix(n, 0), true
		}
	default:
		return time.Time{}, false
	}
}

// parseCaller splits zerolog's "file:line" caller value.
func parseCaller(s string) core.CallerInfo {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return core.NewCallerInfo(s, 0, "")
	}
	line, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return core.NewCallerInfo(s, 0, "")
	}
	return core.NewCallerInfo(s[:i], line, "")
}

func zerologLevelToCore(level zerolog.Level) core.Level {
	switch level {
	case zerolog.PanicLevel:
		return core.PanicLevel
	case zerolog.FatalLevel:
		return core.FatalLevel
	case zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.InfoLevel, zerolog.NoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
