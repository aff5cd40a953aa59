package console

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/philipp01105/richlog/style"
)

// Config holds configuration for a Console
type Config struct {
	// Writer to paint to (default: os.Stdout)
	Writer io.Writer
	// Width of the terminal in cells (default: 80)
	Width int
	// SoftWrap leaves line breaking to the terminal (default: false)
	SoftWrap bool
	// ForceColor emits color even when Writer is not a terminal
	ForceColor bool
	// NoColor disables color; it wins over ForceColor
	NoColor bool
	// DisableHyperlinks suppresses OSC 8 links
	DisableHyperlinks bool
	// Theme entries are layered over the default theme
	Theme style.Theme
}

// Console paints renderables to a writer at a known width.
type Console struct {
	mu       sync.Mutex
	writer   io.Writer
	renderer *lipgloss.Renderer
	opts     Options
}

// New creates a console from cfg, filling in defaults.
func New(cfg Config) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Width <= 0 {
		cfg.Width = 80
	}

	r := lipgloss.NewRenderer(cfg.Writer)
	switch {
	case cfg.NoColor:
		r.SetColorProfile(termenv.Ascii)
	case cfg.ForceColor:
		r.SetColorProfile(termenv.ANSI256)
	case !isTerminal(cfg.Writer):
		r.SetColorProfile(termenv.Ascii)
	}

	theme := style.DefaultTheme(r)
	if cfg.Theme != nil {
		theme = theme.Merge(cfg.Theme)
	}

	return &Console{
		writer:   cfg.Writer,
		renderer: r,
		opts: Options{
			Width:      cfg.Width,
			SoftWrap:   cfg.SoftWrap,
			Hyperlinks: !cfg.DisableHyperlinks,
			Theme:      theme,
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Width returns the console width in cells.
func (c *Console) Width() int { return c.opts.Width }

// SoftWrap reports whether the console leaves wrapping to the terminal.
func (c *Console) SoftWrap() bool { return c.opts.SoftWrap }

// Options returns the render options the console paints with.
func (c *Console) Options() Options { return c.opts }

// Renderer returns the lipgloss renderer bound to the console's writer.
func (c *Console) Renderer() *lipgloss.Renderer { return c.renderer }

// Sprint renders r to a string without writing it.
func (c *Console) Sprint(r Renderable) string {
	return strings.Join(r.Render(c.opts), "\n")
}

// Print renders each renderable and writes it followed by a newline.
// Writes from concurrent callers never interleave.
func (c *Console) Print(rs ...Renderable) error {
	var b strings.Builder
	for _, r := range rs {
		for _, line := range r.Render(c.opts) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	c.mu.Lock()
	_, err := io.WriteString(c.writer, b.String())
	c.mu.Unlock()
	return err
}
