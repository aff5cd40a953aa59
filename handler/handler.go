package handler

import (
	"github.com/pkg/errors"

	"github.com/philipp01105/richlog/core"
)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("handler: closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// LevelEnabler is an optional interface that lets bridges skip building
// entries the handler would discard.
type LevelEnabler interface {
	Enabled(level core.Level) bool
}

func enabled(h Handler, level core.Level) bool {
	if le, ok := h.(LevelEnabler); ok {
		return le.Enabled(level)
	}
	return true
}
