package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "0.1.0"

func init() {
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Print the version of elemental",
		Run: func(cmd *cobra.Command, _ []string) {
			generateCmdOutput(cmd.OutOrStdout())
		},
	}
	RootCommand.AddCommand(versionCommand)
}

func generateCmdOutput(out io.Writer) {
	fmt.Fprintln(out, "Version: "+Version)
	fmt.Fprintln(out, "Go Version: "+runtime.Version())
}
