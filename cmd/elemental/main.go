// Command elemental renders table configurations to HTML and scaffolds
// configurations from Go structs.
package main

import (
	"os"
	"path"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCommand is the base command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:          path.Base(os.Args[0]),
	Short:        "elemental - HTML tables and elements from declarative configs",
	SilenceUsage: true,
}

var (
	logLevel  string
	logFormat string
	logger    = logrus.New()
)

func init() {
	RootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	RootCommand.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	RootCommand.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := checkEnvironmentVariables(cmd); err != nil {
			return err
		}
		return configureLogger(logger, cmd.ErrOrStderr(), logLevel, logFormat)
	}
}

func main() {
	if err := RootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
