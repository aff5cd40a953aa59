package logger_test

import (
	"os"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/handler"
	"github.com/philipp01105/richlog/logger"
	"github.com/philipp01105/richlog/render"
)

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Info("Application started")
	logger.Info("User login",
		logger.String("username", "alice"),
		logger.Int("user_id", 123),
	)
}

// Create a custom Logger with the Builder pattern.
func ExampleNewBuilder() {
	h, err := handler.NewConsoleHandler(handler.ConsoleConfig{
		Console:  console.New(console.Config{Writer: os.Stdout, Width: 60, SoftWrap: true, NoColor: true}),
		Layout:   render.LayoutFluid,
		HideTime: true,
	})
	if err != nil {
		panic(err)
	}

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.DebugLevel).
		WithFields(logger.String("service", "api")).
		Build()
	defer log.Close()

	log.Info("ready", logger.Int("port", 8080))
	// Output:
	// INFO     ready service=api port=8080
}

// Use With to create a child logger with persistent context fields.
func ExampleLogger_With() {
	h, err := handler.NewConsoleHandler(handler.ConsoleConfig{
		Console:   console.New(console.Config{Writer: os.Stdout, Width: 60, SoftWrap: true, NoColor: true}),
		Layout:    render.LayoutFluid,
		HideTime:  true,
		HideLevel: true,
	})
	if err != nil {
		panic(err)
	}

	log := logger.NewBuilder().WithHandler(h).Build()
	defer log.Close()

	reqLog := log.With(
		logger.String("request_id", "req-12345"),
		logger.String("method", "GET"),
	)

	reqLog.Info("Processing request", logger.String("path", "/api/users"))
	reqLog.Info("Request completed", logger.Int("status", 200))
	// Output:
	// Processing request request_id=req-12345 method=GET path=/api/users
	// Request completed request_id=req-12345 method=GET status=200
}
