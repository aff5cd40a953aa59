package formatter

import (
	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/render"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format converts an entry into the event a renderer lays out
	Format(entry *core.Entry) render.Event
}

// Config holds common formatter configuration
type Config struct {
	// EnableLinkPath links the path to the absolute source file
	EnableLinkPath bool
	// HideFields leaves structured fields out of the message
	HideFields bool
	// HideTracebacks leaves the error traceback segment out
	HideTracebacks bool
	// TimeFormat overrides the renderer's strftime pattern (empty: renderer default)
	TimeFormat string
}
