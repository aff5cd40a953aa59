package benchmark

import (
	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/handler"
)

// noopHandler isolates the cost of a front end from rendering.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
