// Package cmd provides the command-line interface for spur.
//
// Configuration System:
//
//	Settings are resolved from multiple sources with clear precedence:
//	1. Command-line flags - highest priority
//	2. SPUR_CONFIG_FILE environment variable - custom manifest path
//	3. Individual environment variables (SPUR_CSS_ENABLED, ...)
//	4. The spur.yml manifest in the current directory - lowest priority
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spurkit/spur/internal/errors"
	"github.com/spurkit/spur/internal/logging"
	"github.com/spurkit/spur/internal/ui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spur",
	Short: "Scaffold web applications and run them under a watch loop",
	Long: `Spur scaffolds web application projects from GitHub-hosted templates and
runs them in a development mode that rebuilds on every source change.

Quick Start:
  spur create-app my-app          Create a project from the default template
  cd my-app && spur dev           Run it with rebuild-on-change

When the project manifest (spur.yml) enables the css section, spur dev also
runs a Tailwind watcher next to the app and keeps both lifetimes linked: if
either stops, both stop.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and renders any error with its suggestion.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printer := ui.NewPrinter(os.Stderr)
		printer.Error(err, errors.SuggestionFor(err))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "manifest file (default is spur.yml, can also use SPUR_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")

	bindPersistentFlags(rootCmd.PersistentFlags())
}

// bindPersistentFlags makes every persistent flag except --config available
// through viper, so flags and SPUR_ environment variables resolve uniformly.
func bindPersistentFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = viper.BindPFlag(f.Name, f)
	})
}

// initConfig wires viper to the manifest and the SPUR_ environment prefix.
// A missing manifest is not an error; defaults apply.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SPUR_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("spur")
	}

	viper.SetEnvPrefix("SPUR")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}

// newLogger builds the process logger from the --log-level flag.
func newLogger() logging.Logger {
	return logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(viper.GetString("log-level")),
		Format: "text",
		Output: os.Stderr,
	})
}
