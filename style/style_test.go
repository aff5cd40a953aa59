package style

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestDefaultTheme_HasLogStyles(t *testing.T) {
	theme := DefaultTheme(asciiRenderer())
	for _, name := range []string{Time, Level, Message, Path, "logging.level.warning"} {
		if _, ok := theme[name]; !ok {
			t.Errorf("default theme is missing %q", name)
		}
	}
}

func TestTheme_GetUnknownIsUnstyled(t *testing.T) {
	theme := DefaultTheme(asciiRenderer())
	if got := theme.Get("no.such.style").Render("plain"); got != "plain" {
		t.Errorf("unknown style rendered %q, want %q", got, "plain")
	}
	var nilTheme Theme
	if got := nilTheme.Get(Time).Render("x"); got != "x" {
		t.Errorf("nil theme rendered %q", got)
	}
}

func TestTheme_Merge(t *testing.T) {
	r := asciiRenderer()
	base := Theme{Time: r.NewStyle()}
	over := Theme{Path: r.NewStyle().Bold(true)}
	merged := base.Merge(over)
	if len(merged) != 2 {
		t.Fatalf("merged theme has %d entries, want 2", len(merged))
	}
	if len(base) != 1 {
		t.Error("Merge modified the receiver")
	}
}
