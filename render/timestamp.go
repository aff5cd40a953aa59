package render

import (
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// State is the memory a renderer keeps between calls: the last time string
// it displayed.
type State struct {
	last  string
	shown bool
}

// Last returns the last displayed time string, if any.
func (s State) Last() (string, bool) {
	return s.last, s.shown
}

// FormatTime formats t with f and compares the result with prev.
//
// A string equal to the one in prev is reported as repeated and returned as
// blanks of the same display width; prev is returned unchanged. Any other
// string is returned as is together with a State that remembers it.
// Events whose times differ below the resolution of the pattern therefore
// count as repeats.
func FormatTime(t time.Time, f *strftime.Strftime, prev State) (display string, repeated bool, next State) {
	display = f.FormatString(t)
	if prev.shown && display == prev.last {
		return strings.Repeat(" ", runewidth.StringWidth(display)), true, prev
	}
	return display, false, State{last: display, shown: true}
}

func compilePattern(pattern string) (*strftime.Strftime, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return nil, errors.Wrapf(ErrTimeFormat, "%q: %v", pattern, err)
	}
	return f, nil
}
