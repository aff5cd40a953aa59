package console

import (
	"github.com/philipp01105/richlog/style"
)

// Options carries what a renderable needs to lay itself out.
type Options struct {
	// Width is the number of cells available. Zero means unbounded.
	Width int
	// SoftWrap leaves long lines intact so the terminal wraps them.
	SoftWrap bool
	// Hyperlinks enables OSC 8 links.
	Hyperlinks bool
	// Theme resolves style names.
	Theme style.Theme
	// Style is the base style name for spans that carry none.
	Style string
}

// WithWidth returns a copy of o constrained to width cells.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns a copy of o using name as the base style.
func (o Options) WithStyle(name string) Options {
	o.Style = name
	return o
}

// Renderable is anything the console can paint. Render returns the lines
// of output, already styled.
type Renderable interface {
	Render(o Options) []string
}

// Group stacks renderables vertically.
type Group []Renderable

// Render implements Renderable.
func (g Group) Render(o Options) []string {
	var lines []string
	for _, r := range g {
		if r == nil {
			continue
		}
		lines = append(lines, r.Render(o)...)
	}
	return lines
}
