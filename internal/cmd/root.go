package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/philipp01105/richlog/console"
)

var cfgFile string

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "richlog-demo",
	Short: "Render log lines in tabular and fluid layouts",
	Long: `richlog-demo prints log records through richlog's console handlers.

Without a subcommand it runs "compare", which logs the same warning through
a tabular handler and a fluid, soft-wrapping handler on consoles of the same
width so the two layouts can be compared side by side.

Every flag can also be set in .richlog.yaml or through RICHLOG_* environment
variables, e.g. RICHLOG_WIDTH=80.`,
	SilenceUsage: true,
	RunE:         runCompare,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: ./.richlog.yaml or $HOME/.richlog.yaml)")
	flags.IntP("width", "w", 50, "console width in cells")
	flags.String("time-format", "[%X]", "strftime pattern for the time column")
	flags.Bool("no-color", false, "disable colors")
	flags.Bool("force-color", false, "emit colors even when stdout is not a terminal")
	flags.Bool("links", false, "link paths to source files (OSC 8)")
	flags.Bool("debug", false, "print handler diagnostics to stderr")

	for _, name := range []string{"width", "time-format", "no-color", "force-color", "links", "debug"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".richlog")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("richlog")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing || cfgFile != "" {
			fmt.Fprintln(os.Stderr, "richlog-demo: reading config:", err)
		}
	}
}

// newConsole builds a stdout console from the bound settings.
func newConsole(softWrap bool) *console.Console {
	return console.New(console.Config{
		Writer:            os.Stdout,
		Width:             viper.GetInt("width"),
		SoftWrap:          softWrap,
		NoColor:           viper.GetBool("no-color"),
		ForceColor:        viper.GetBool("force-color"),
		DisableHyperlinks: !viper.GetBool("links"),
	})
}

func diagnostics() *zap.Logger {
	if !viper.GetBool("debug") {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
