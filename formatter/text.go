package formatter

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/render"
	"github.com/philipp01105/richlog/style"
	"github.com/philipp01105/richlog/text"
)

// TextFormatter formats log entries as styled text segments
type TextFormatter struct {
	Config
}

var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format builds the event for entry.
func (f *TextFormatter) Format(entry *core.Entry) render.Event {
	ev := render.Event{
		Time:       entry.Time,
		TimeFormat: f.TimeFormat,
		Level:      LevelText(entry.Level),
		Segments:   []console.Renderable{f.message(entry)},
	}

	if !f.HideTracebacks && entry.Err != nil {
		ev.Segments = append(ev.Segments, Traceback(entry.Err))
	}

	if entry.Caller.Defined {
		ev.Path = entry.Caller.ShortFile
		ev.Line = entry.Caller.Line
		if f.EnableLinkPath {
			ev.LinkPath = entry.Caller.File
		}
	}
	return ev
}

func (f *TextFormatter) message(entry *core.Entry) *text.Text {
	msg := text.New(entry.Message)
	if f.HideFields {
		return msg
	}
	for _, field := range entry.Fields {
		msg.Append(" ", "")
		msg.Append(field.Key, style.Field)
		msg.Append("="+field.StringValue(), "")
	}
	return msg
}

// LevelText returns the level label styled for its severity.
func LevelText(level core.Level) *text.Text {
	return text.Styled(level.String(), level.StyleName())
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Traceback renders err, followed by its stack when one was recorded with
// github.com/pkg/errors anywhere in the chain.
func Traceback(err error) *text.Text {
	msg := err.Error()
	var st stackTracer
	if errors.As(err, &st) {
		msg += fmt.Sprintf("%+v", st.StackTrace())
	}
	return text.Styled(msg, style.Traceback)
}
