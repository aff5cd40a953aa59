package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// LevelWidth is the width of the level label in both layouts: the fixed
// level column of Tabular and the padded level prefix of Fluid.
const LevelWidth = 8

// DefaultTimeFormat is the strftime pattern used when Config.TimeFormat is
// empty.
const DefaultTimeFormat = "[%x %X]"

var (
	// ErrNoSegments is returned by Fluid when an event has no message
	// segments to attach the prefix to.
	ErrNoSegments = errors.New("render: fluid layout needs at least one message segment")
	// ErrSegmentType is returned by Fluid when the first or last message
	// segment is not *text.Text and cannot be prefixed or suffixed.
	ErrSegmentType = errors.New("render: fluid layout needs text at both ends of the message")
	// ErrTimeFormat is returned for strftime patterns that do not compile.
	ErrTimeFormat = errors.New("render: invalid time format")
)

// Config is fixed when a renderer is constructed.
type Config struct {
	// ShowTime enables the time column or prefix
	ShowTime bool
	// ShowLevel enables the level column or prefix
	ShowLevel bool
	// ShowPath enables the source location for events that carry one
	ShowPath bool
	// TimeFormat is a strftime pattern (default: DefaultTimeFormat)
	TimeFormat string
	// Now supplies the time for events without one (default: time.Now)
	Now func() time.Time
}

// DefaultConfig shows time and path but not the level.
func DefaultConfig() Config {
	return Config{
		ShowTime:   true,
		ShowPath:   true,
		TimeFormat: DefaultTimeFormat,
	}
}

// Layout selects a renderer implementation.
type Layout int

const (
	// LayoutTabular renders fixed columns.
	LayoutTabular Layout = iota
	// LayoutFluid renders a single soft-wrapping line.
	LayoutFluid
)

// String returns the layout name
func (l Layout) String() string {
	switch l {
	case LayoutTabular:
		return "tabular"
	case LayoutFluid:
		return "fluid"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout converts a layout name to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tabular", "table", "default":
		return LayoutTabular, nil
	case "fluid":
		return LayoutFluid, nil
	default:
		return 0, errors.Errorf("render: unknown layout %q", s)
	}
}
