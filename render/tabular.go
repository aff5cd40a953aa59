package render

import (
	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/style"
	"github.com/philipp01105/richlog/text"
)

// Tabular renders each event as a one-row grid.
type Tabular struct {
	base
}

var _ Renderer = (*Tabular)(nil)

// NewTabular creates a tabular renderer.
func NewTabular(cfg Config) (*Tabular, error) {
	b, err := newBase(cfg)
	if err != nil {
		return nil, err
	}
	return &Tabular{base: b}, nil
}

// Render returns a *console.Grid. An event without segments gets an empty
// message cell.
func (r *Tabular) Render(ev Event) (console.Renderable, error) {
	grid := console.NewGrid(1)
	grid.Expand = true

	row := make([]console.Renderable, 0, 4)
	if r.cfg.ShowTime {
		display, repeated, err := r.formatTime(ev)
		if err != nil {
			return nil, err
		}
		grid.AddColumn(console.Column{Style: style.Time})
		if repeated {
			row = append(row, text.New(display))
		} else {
			row = append(row, text.Styled(display, style.Time))
		}
	}
	if r.cfg.ShowLevel {
		// Labels wider than the column are cut, never folded onto a second row.
		grid.AddColumn(console.Column{Style: style.Level, Width: LevelWidth, Overflow: console.OverflowCrop})
		row = append(row, ev.Level.Copy())
	}

	grid.AddColumn(console.Column{Style: style.Message, Ratio: 1, Overflow: console.OverflowFold})
	segments := make(console.Group, len(ev.Segments))
	copy(segments, ev.Segments)
	row = append(row, segments)

	if r.showPath(ev) {
		grid.AddColumn(console.Column{Style: style.Path})
		row = append(row, pathText(ev, ""))
	}

	grid.AddRow(row...)
	return grid, nil
}
