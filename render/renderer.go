package render

import (
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/text"
)

// Event is one log record as seen by a renderer.
type Event struct {
	// Time of the event. The zero time means now.
	Time time.Time
	// TimeFormat overrides Config.TimeFormat for this event when set.
	TimeFormat string
	// Level label, plain (text.New) or pre-styled.
	Level *text.Text
	// Segments are the parts of the message in display order.
	Segments []console.Renderable
	// Path of the source file; empty when unknown.
	Path string
	// Line number in Path; zero when unknown.
	Line int
	// LinkPath is the file the path links to; empty for no link.
	LinkPath string
}

// Renderer lays out events. Implementations keep per-instance state and
// are not safe for concurrent use.
type Renderer interface {
	Render(ev Event) (console.Renderable, error)
}

// New returns the renderer for layout.
func New(cfg Config, layout Layout) (Renderer, error) {
	switch layout {
	case LayoutTabular:
		return NewTabular(cfg)
	case LayoutFluid:
		return NewFluid(cfg)
	default:
		return nil, errors.Errorf("render: unknown layout %v", layout)
	}
}

// base holds what both layouts share: configuration and the time memory.
type base struct {
	cfg       Config
	format    *strftime.Strftime
	overrides map[string]*strftime.Strftime
	state     State
}

func newBase(cfg Config) (base, error) {
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = DefaultTimeFormat
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	f, err := compilePattern(cfg.TimeFormat)
	if err != nil {
		return base{}, err
	}
	return base{cfg: cfg, format: f}, nil
}

// Config returns the configuration the renderer was built with.
func (b *base) Config() Config { return b.cfg }

// State returns a copy of the renderer's time memory.
func (b *base) State() State { return b.state }

// formatTime returns the time text for ev and records it. The state is only
// touched once the pattern is known to be valid.
func (b *base) formatTime(ev Event) (string, bool, error) {
	f := b.format
	if ev.TimeFormat != "" && ev.TimeFormat != b.cfg.TimeFormat {
		var err error
		if f, err = b.override(ev.TimeFormat); err != nil {
			return "", false, err
		}
	}

	t := ev.Time
	if t.IsZero() {
		t = b.cfg.Now()
	}
	display, repeated, next := FormatTime(t, f, b.state)
	b.state = next
	return display, repeated, nil
}

func (b *base) override(pattern string) (*strftime.Strftime, error) {
	if f, ok := b.overrides[pattern]; ok {
		return f, nil
	}
	f, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	if b.overrides == nil {
		b.overrides = make(map[string]*strftime.Strftime)
	}
	b.overrides[pattern] = f
	return f, nil
}

func (b *base) showPath(ev Event) bool {
	return b.cfg.ShowPath && ev.Path != ""
}

// pathText builds "path[:line]" with the path linked to file://LinkPath.
// Every span gets styleName.
func pathText(ev Event, styleName string) *text.Text {
	t := &text.Text{}
	var target string
	if ev.LinkPath != "" {
		target = "file://" + ev.LinkPath
	}
	t.AppendLink(ev.Path, styleName, target)
	if ev.Line != 0 {
		t.Append(":"+strconv.Itoa(ev.Line), styleName)
	}
	return t
}
