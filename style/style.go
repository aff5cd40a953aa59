// Package style holds the named styles richlog renders with.
//
// Renderers refer to styles by name only ("log.time", "log.level", ...).
// A Theme resolves names to lipgloss styles at paint time; names missing
// from the theme resolve to an unstyled lipgloss.Style.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Style names consumed by the log renderers.
const (
	Time      = "log.time"
	Level     = "log.level"
	Message   = "log.message"
	Path      = "log.path"
	Field     = "log.field"
	Traceback = "log.traceback"
)

// Theme maps style names to lipgloss styles.
type Theme map[string]lipgloss.Style

// Get resolves name. Unknown and empty names yield an empty style.
func (t Theme) Get(name string) lipgloss.Style {
	if name == "" || t == nil {
		return lipgloss.NewStyle()
	}
	if s, ok := t[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Merge returns a copy of t with the entries of other layered on top.
func (t Theme) Merge(other Theme) Theme {
	out := make(Theme, len(t)+len(other))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// DefaultTheme returns the stock log theme bound to r, so that the color
// profile of r decides which escape sequences are emitted. A nil renderer
// uses lipgloss' default renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Time:      r.NewStyle().Foreground(lipgloss.Color("6")).Faint(true),
		Level:     r.NewStyle(),
		Message:   r.NewStyle(),
		Path:      r.NewStyle().Faint(true),
		Field:     r.NewStyle().Foreground(lipgloss.Color("3")),
		Traceback: r.NewStyle().Foreground(lipgloss.Color("1")),

		"logging.level.debug":    r.NewStyle().Foreground(lipgloss.Color("2")),
		"logging.level.info":     r.NewStyle().Foreground(lipgloss.Color("4")),
		"logging.level.warning":  r.NewStyle().Foreground(lipgloss.Color("1")),
		"logging.level.error":    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		"logging.level.critical": r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Reverse(true),
		"logging.level.panic":    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Reverse(true),
	}
}
