package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/richlog/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any child handles level
func (h *MultiHandler) Enabled(level core.Level) bool {
	for _, child := range h.handlers {
		if enabled(child, level) {
			return true
		}
	}
	return false
}

// Handle processes a log entry by sending it to all handlers. Every child
// sees the entry even if an earlier one fails; the failures are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
