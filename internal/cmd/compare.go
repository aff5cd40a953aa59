package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philipp01105/richlog/handler"
	"github.com/philipp01105/richlog/logger"
	"github.com/philipp01105/richlog/render"
)

const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod " +
	"tempor incididunt ut labore et dolore magna aliqua."

var compareCmd = &cobra.Command{
	Use:   "compare [message]",
	Short: "Log one warning through a tabular and a fluid handler",
	Long: `Log one warning through two handlers writing to consoles of the same
width. The first uses the default tabular layout and hard wraps the message
inside its column; the second uses the fluid layout on a soft-wrapping
console and lets the terminal wrap the single line.

Examples:
  richlog-demo compare
  richlog-demo compare --width 80 "disk almost full"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	msg := loremIpsum
	if len(args) == 1 {
		msg = args[0]
	}

	diag := diagnostics()
	defer func() { _ = diag.Sync() }()

	tabular, err := handler.NewConsoleHandler(handler.ConsoleConfig{
		Console:        newConsole(false),
		TimeFormat:     viper.GetString("time-format"),
		EnableLinkPath: viper.GetBool("links"),
		Diagnostics:    diag.Named("tabular"),
	})
	if err != nil {
		return errors.Wrap(err, "tabular handler")
	}
	fluid, err := handler.NewConsoleHandler(handler.ConsoleConfig{
		Console:        newConsole(true),
		Layout:         render.LayoutFluid,
		TimeFormat:     viper.GetString("time-format"),
		EnableLinkPath: viper.GetBool("links"),
		Diagnostics:    diag.Named("fluid"),
	})
	if err != nil {
		return errors.Wrap(err, "fluid handler")
	}

	log := logger.NewBuilder().
		WithHandler(handler.NewMultiHandler(tabular, fluid)).
		WithLevel(logger.DebugLevel).
		WithCaller(true).
		Build()
	defer log.Close()

	log.Warn(msg)
	return nil
}
