package render

import (
	"github.com/pkg/errors"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/style"
	"github.com/philipp01105/richlog/text"
)

// Fluid renders each event as one line meant for a soft-wrapping console.
type Fluid struct {
	base
}

var _ Renderer = (*Fluid)(nil)

// NewFluid creates a fluid renderer.
func NewFluid(cfg Config) (*Fluid, error) {
	b, err := newBase(cfg)
	if err != nil {
		return nil, err
	}
	return &Fluid{base: b}, nil
}

// Render returns a console.Group of the same length and order as
// ev.Segments. The first element is prefixed with the time and level, the
// last is suffixed with the path. ev.Segments itself is left untouched.
//
// The first and last segments must be *text.Text. Render fails with
// ErrNoSegments or ErrSegmentType otherwise, before any state changes.
func (r *Fluid) Render(ev Event) (console.Renderable, error) {
	n := len(ev.Segments)
	if n == 0 {
		return nil, ErrNoSegments
	}
	first, ok := ev.Segments[0].(*text.Text)
	if !ok {
		return nil, errors.Wrapf(ErrSegmentType, "first segment is %T", ev.Segments[0])
	}
	last, ok := ev.Segments[n-1].(*text.Text)
	if !ok {
		return nil, errors.Wrapf(ErrSegmentType, "last segment is %T", ev.Segments[n-1])
	}

	prefix := &text.Text{}
	if r.cfg.ShowTime {
		display, _, err := r.formatTime(ev)
		if err != nil {
			return nil, err
		}
		prefix.Append(display, style.Time).Append(" ", "")
	}
	if r.cfg.ShowLevel {
		level := ev.Level.Copy().PadRight(LevelWidth)
		prefix.AppendText(level, style.Level).Append(" ", "")
	}

	out := make(console.Group, n)
	copy(out, ev.Segments)

	if r.showPath(ev) {
		suffix := text.Styled(" ", style.Path).AppendText(pathText(ev, style.Path), "")
		last = text.Concat(last, suffix)
		out[n-1] = last
		if n == 1 {
			first = last
		}
	}
	out[0] = text.Concat(prefix, first)
	return out, nil
}
