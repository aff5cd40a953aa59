// Package text implements styled text: a run of spans, each carrying a
// style name and an optional hyperlink target.
//
// Text values are built by appending and concatenating. Style names are
// only resolved when the text is rendered, against the theme of the
// console painting it.
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/philipp01105/richlog/console"
)

// Span is a piece of text with one style.
type Span struct {
	Text  string
	Style string
	Link  string
}

// Text is styled text. The zero value is empty text ready to use.
type Text struct {
	spans []Span
}

var _ console.Renderable = (*Text)(nil)

// New returns unstyled text holding s.
func New(s string) *Text {
	return Styled(s, "")
}

// Styled returns text holding s in the named style.
func Styled(s, styleName string) *Text {
	t := &Text{}
	return t.Append(s, styleName)
}

// Blank returns width spaces in the named style.
func Blank(width int, styleName string) *Text {
	if width < 0 {
		width = 0
	}
	return Styled(strings.Repeat(" ", width), styleName)
}

// Append adds s in the named style and returns t.
func (t *Text) Append(s, styleName string) *Text {
	return t.AppendLink(s, styleName, "")
}

// AppendLink adds s in the named style, linked to target when target is
// not empty, and returns t.
func (t *Text) AppendLink(s, styleName, target string) *Text {
	if s == "" {
		return t
	}
	t.spans = append(t.spans, Span{Text: s, Style: styleName, Link: target})
	return t
}

// AppendText adds the spans of other and returns t. Spans of other that
// carry no style take base when base is set.
func (t *Text) AppendText(other *Text, base string) *Text {
	if other == nil {
		return t
	}
	for _, sp := range other.spans {
		if sp.Style == "" {
			sp.Style = base
		}
		t.spans = append(t.spans, sp)
	}
	return t
}

// Concat returns new text made of a followed by b. Neither is modified.
func Concat(a, b *Text) *Text {
	return a.Copy().AppendText(b, "")
}

// Copy returns an independent copy of t.
func (t *Text) Copy() *Text {
	if t == nil {
		return &Text{}
	}
	spans := make([]Span, len(t.spans))
	copy(spans, t.spans)
	return &Text{spans: spans}
}

// PadRight appends unstyled spaces until t is width cells wide. Text that
// is already wide enough is left alone.
func (t *Text) PadRight(width int) *Text {
	if n := width - t.Width(); n > 0 {
		t.Append(strings.Repeat(" ", n), "")
	}
	return t
}

// Spans returns a copy of the spans of t.
func (t *Text) Spans() []Span {
	if t == nil {
		return nil
	}
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// Plain returns the text without styles or links.
func (t *Text) Plain() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, sp := range t.spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (t *Text) String() string { return t.Plain() }

// Width returns the display width of the longest line in cells.
func (t *Text) Width() int {
	widest := 0
	for _, line := range strings.Split(t.Plain(), "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// Render implements console.Renderable. Unless soft wrapping is enabled the
// text is wrapped to o.Width.
func (t *Text) Render(o console.Options) []string {
	var b strings.Builder
	if t != nil {
		for _, sp := range t.spans {
			name := sp.Style
			if name == "" {
				name = o.Style
			}
			st := o.Theme.Get(name)

			pieces := strings.Split(sp.Text, "\n")
			for i, piece := range pieces {
				if i > 0 {
					b.WriteByte('\n')
				}
				if piece == "" {
					continue
				}
				styled := st.Render(piece)
				if sp.Link != "" && o.Hyperlinks {
					styled = ansi.SetHyperlink(sp.Link) + styled + ansi.ResetHyperlink()
				}
				b.WriteString(styled)
			}
		}
	}

	lines := strings.Split(b.String(), "\n")
	if o.SoftWrap || o.Width <= 0 {
		return lines
	}
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		if ansi.StringWidth(line) <= o.Width {
			wrapped = append(wrapped, line)
			continue
		}
		wrapped = append(wrapped, strings.Split(ansi.Wrap(line, o.Width, ""), "\n")...)
	}
	return wrapped
}
