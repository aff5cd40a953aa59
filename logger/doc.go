// Package logger is the public API of richlog. Most users only need to
// import this package.
//
// A Logger is immutable after construction. The fields, the level
// and the handler are set once via the Builder and never modified, so a
// Logger is safe for concurrent use without locking on the read path.
//
// The package initializes a default Logger in init(): InfoLevel, caller
// capture on, tabular console output to stdout. The package-level
// functions Info, Error, Debugf, etc. delegate to it:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// For custom configuration, use the Builder with any handler.Handler:
//
//	h, err := handler.NewConsoleHandler(handler.ConsoleConfig{
//	    Layout: render.LayoutFluid,
//	})
//	log := logger.NewBuilder().
//	    WithHandler(h).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
//
// Child loggers with extra fields are created via With:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// Level checks happen before the entry is taken from the pool, so
// filtered-out messages cost a single comparison.
package logger
