package handler

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/formatter"
	"github.com/philipp01105/richlog/render"
)

// ConsoleHandler renders log entries and paints them on a console
type ConsoleHandler struct {
	mu        sync.Mutex
	console   *console.Console
	renderer  render.Renderer
	formatter formatter.Formatter
	level     core.Level
	diag      *zap.Logger
	stats     *Stats
	closed    bool
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Console to paint on (default: stdout, width 80, soft wrap for LayoutFluid)
	Console *console.Console
	// Layout picks the renderer when Renderer is nil (default: LayoutTabular)
	Layout render.Layout
	// Renderer overrides Layout with a caller-built renderer. It must not be
	// shared with other handlers.
	Renderer render.Renderer
	// HideTime, HideLevel and HidePath switch off parts of the line
	HideTime  bool
	HideLevel bool
	HidePath  bool
	// TimeFormat is the strftime pattern for the time (default: "[%x %X]")
	TimeFormat string
	// Formatter builds render events (default: TextFormatter)
	Formatter formatter.Formatter
	// EnableLinkPath links paths to the source file (default formatter only)
	EnableLinkPath bool
	// Level is the minimum level handled (default: DebugLevel)
	Level core.Level
	// Diagnostics receives render and write failures (default: zap.NewNop())
	Diagnostics *zap.Logger
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) (*ConsoleHandler, error) {
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = zap.NewNop()
	}
	if cfg.Console == nil {
		cfg.Console = console.New(console.Config{SoftWrap: cfg.Layout == render.LayoutFluid})
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{EnableLinkPath: cfg.EnableLinkPath})
	}
	if cfg.Renderer == nil {
		r, err := render.New(render.Config{
			ShowTime:   !cfg.HideTime,
			ShowLevel:  !cfg.HideLevel,
			ShowPath:   !cfg.HidePath,
			TimeFormat: cfg.TimeFormat,
		}, cfg.Layout)
		if err != nil {
			return nil, errors.Wrap(err, "handler: build renderer")
		}
		cfg.Renderer = r
	}

	if _, fluid := cfg.Renderer.(*render.Fluid); fluid && !cfg.Console.SoftWrap() {
		cfg.Diagnostics.Warn("fluid layout on a hard-wrapping console; long lines will break mid-word",
			zap.Int("width", cfg.Console.Width()))
	}

	return &ConsoleHandler{
		console:   cfg.Console,
		renderer:  cfg.Renderer,
		formatter: cfg.Formatter,
		level:     cfg.Level,
		diag:      cfg.Diagnostics,
		stats:     NewStats(),
	}, nil
}

// Enabled reports whether entries at level are handled
func (h *ConsoleHandler) Enabled(level core.Level) bool {
	return level >= h.level
}

// Handle renders entry and writes it to the console
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if !h.Enabled(entry.Level) {
		h.stats.IncrementFiltered()
		return nil
	}
	ev := h.formatter.Format(entry)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	out, err := h.renderer.Render(ev)
	if err != nil {
		h.stats.IncrementFailed()
		h.diag.Error("render log entry", zap.Error(err), zap.Stringer("level", entry.Level))
		return errors.Wrap(err, "handler: render")
	}
	if err := h.console.Print(out); err != nil {
		h.stats.IncrementFailed()
		h.diag.Error("write log entry", zap.Error(err))
		return errors.Wrap(err, "handler: write")
	}
	h.stats.IncrementProcessed()
	return nil
}

// Console returns the console the handler paints on
func (h *ConsoleHandler) Console() *console.Console {
	return h.console
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. Further calls to Handle return ErrClosed.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	// Sync fails on unsyncable sinks such as stdout; nothing to report there.
	_ = h.diag.Sync()
	return nil
}
