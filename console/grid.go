package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overflow is a column's policy for content wider than the column.
type Overflow int

const (
	// OverflowFold wraps long content onto following lines.
	OverflowFold Overflow = iota
	// OverflowCrop cuts long content at the column edge.
	OverflowCrop
)

// Column describes one grid column.
type Column struct {
	// Style is the base style name for the cells of the column.
	Style string
	// Width fixes the column width. Zero sizes the column to its content.
	Width int
	// Ratio makes the column flexible: it receives the space left by the
	// other columns, shared between flexible columns by ratio.
	Ratio    int
	Overflow Overflow
}

// Grid arranges renderables into aligned rows and columns without borders.
type Grid struct {
	Columns []Column
	Rows    [][]Renderable
	// Padding is the number of blank cells between adjacent columns.
	Padding int
	// Expand stretches flexible columns to fill the available width.
	Expand bool
}

// NewGrid returns an empty grid with the given column gap.
func NewGrid(padding int) *Grid {
	return &Grid{Padding: padding}
}

// AddColumn appends a column.
func (g *Grid) AddColumn(c Column) {
	g.Columns = append(g.Columns, c)
}

// AddRow appends a row. Missing cells render empty; extra cells are ignored.
func (g *Grid) AddRow(cells ...Renderable) {
	g.Rows = append(g.Rows, cells)
}

// Render implements Renderable.
func (g *Grid) Render(o Options) []string {
	if len(g.Columns) == 0 {
		return nil
	}
	widths := g.columnWidths(o)

	var out []string
	for _, row := range g.Rows {
		blocks := make([]string, 0, 2*len(g.Columns)-1)
		for i, col := range g.Columns {
			if i > 0 && g.Padding > 0 {
				blocks = append(blocks, strings.Repeat(" ", g.Padding))
			}
			blocks = append(blocks, renderCell(cellAt(row, i), col, widths[i], o))
		}
		out = append(out, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")...)
	}
	return out
}

func (g *Grid) columnWidths(o Options) []int {
	widths := make([]int, len(g.Columns))
	used := g.Padding * (len(g.Columns) - 1)
	ratioTotal := 0

	for i, col := range g.Columns {
		switch {
		case col.Ratio > 0:
			ratioTotal += col.Ratio
		case col.Width > 0:
			widths[i] = col.Width
			used += col.Width
		default:
			widths[i] = g.naturalWidth(i, o.WithStyle(col.Style))
			used += widths[i]
		}
	}
	if ratioTotal == 0 {
		return widths
	}

	remaining := o.Width - used
	for i, col := range g.Columns {
		if col.Ratio == 0 {
			continue
		}
		w := remaining * col.Ratio / ratioTotal
		if !g.Expand || o.Width <= 0 {
			natural := g.naturalWidth(i, o.WithStyle(col.Style))
			if o.Width <= 0 || natural < w {
				w = natural
			}
		}
		if w < 1 {
			w = 1
		}
		widths[i] = w
	}
	return widths
}

func (g *Grid) naturalWidth(col int, o Options) int {
	widest := 0
	for _, row := range g.Rows {
		cell := cellAt(row, col)
		if cell == nil {
			continue
		}
		for _, line := range cell.Render(o) {
			if w := lipgloss.Width(line); w > widest {
				widest = w
			}
		}
	}
	return widest
}

func cellAt(row []Renderable, i int) Renderable {
	if i < len(row) {
		return row[i]
	}
	return nil
}

func renderCell(cell Renderable, col Column, width int, o Options) string {
	var lines []string
	if cell != nil {
		co := o.WithWidth(width).WithStyle(col.Style)
		// Cropped columns must not wrap before truncation.
		co.SoftWrap = col.Overflow == OverflowCrop
		lines = cell.Render(co)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	fitted := make([]string, 0, len(lines))
	for _, line := range lines {
		if lipgloss.Width(line) > width {
			if col.Overflow == OverflowCrop {
				line = ansi.Truncate(line, width, "")
			} else {
				fitted = append(fitted, strings.Split(ansi.Hardwrap(line, width, true), "\n")...)
				continue
			}
		}
		fitted = append(fitted, line)
	}
	for i, line := range fitted {
		if pad := width - lipgloss.Width(line); pad > 0 {
			fitted[i] = line + strings.Repeat(" ", pad)
		}
	}
	return strings.Join(fitted, "\n")
}
