package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/handler"
	"github.com/philipp01105/richlog/logger"
	"github.com/philipp01105/richlog/render"
)

var emitCmd = &cobra.Command{
	Use:   "emit message [key=value...]",
	Short: "Log a single message with the chosen layout",
	Long: `Log one message. Trailing key=value arguments become fields. With
--repeat the message is logged several times; repeats within the same second
leave the time column blank.

Examples:
  richlog-demo emit "server started" port=8080
  richlog-demo emit --layout fluid --level error --repeat 3 "retrying"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEmit,
}

func init() {
	flags := emitCmd.Flags()
	flags.StringP("layout", "L", "tabular", "layout: tabular, fluid")
	flags.StringP("level", "l", "info", "level: debug, info, warning, error, critical")
	flags.Int("repeat", 1, "log the message this many times")
	flags.Bool("hide-time", false, "leave the time column out")
	flags.Bool("hide-level", false, "leave the level column out")
	flags.Bool("hide-path", false, "leave the source path out")

	for _, name := range []string{"layout", "level", "repeat", "hide-time", "hide-level", "hide-path"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	layout, err := render.ParseLayout(viper.GetString("layout"))
	if err != nil {
		return err
	}

	diag := diagnostics()
	defer func() { _ = diag.Sync() }()

	h, err := handler.NewConsoleHandler(handler.ConsoleConfig{
		Console:        newConsole(layout == render.LayoutFluid),
		Layout:         layout,
		HideTime:       viper.GetBool("hide-time"),
		HideLevel:      viper.GetBool("hide-level"),
		HidePath:       viper.GetBool("hide-path"),
		TimeFormat:     viper.GetString("time-format"),
		EnableLinkPath: viper.GetBool("links"),
		Diagnostics:    diag,
	})
	if err != nil {
		return errors.Wrap(err, "console handler")
	}

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.DebugLevel).
		WithCaller(true).
		Build()
	defer log.Close()

	fields, err := parseFields(args[1:])
	if err != nil {
		return err
	}
	level := core.ParseLevel(viper.GetString("level"))
	for i := 0; i < viper.GetInt("repeat"); i++ {
		log.Log(level, args[0], fields...)
	}
	return nil
}

// parseFields turns key=value arguments into fields, narrowing numbers and
// booleans the way the bridges do.
func parseFields(args []string) ([]core.Field, error) {
	fields := make([]core.Field, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("field %q is not key=value", arg)
		}
		fields = append(fields, core.AnyField(key, scalar(value)))
	}
	return fields, nil
}

func scalar(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
