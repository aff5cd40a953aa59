// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries to the terminal.
//
// ConsoleHandler is the main implementation: it turns each entry into a
// render.Event with a formatter.Formatter, lays it out with a
// render.Renderer (tabular columns or a fluid soft-wrapping line) and paints
// the result on a console.Console. Rendering and writing happen under one
// lock, so a single renderer never sees concurrent calls and its repeated
// timestamp suppression stays consistent.
//
// MultiHandler fans out a single entry to multiple child handlers.
//
// Bridges let other logging frameworks drive a Handler:
//
//   - SlogHandler implements log/slog.Handler.
//   - NewZapCore returns a zapcore.Core for go.uber.org/zap.
//   - LogrusHook is a logrus.Hook.
//   - ZerologWriter is an io.Writer for zerolog's JSON output.
//   - NewGologHandler returns a golog.Handler for kataras/golog.
//
// Handlers track processed, filtered and failed counts via the Stats type.
package handler
