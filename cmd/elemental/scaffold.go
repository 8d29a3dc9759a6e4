package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/elemental/lib/scaffold"
)

func init() {
	var write, dryRun bool

	scaffoldCommand := &cobra.Command{
		Use:   "scaffold DIR [TYPE...]",
		Short: "Generate table configs from Go structs",
		Long: `Generate a starter table config from the struct declarations of the Go
package in DIR.

With a single TYPE the config is written to standard output. With --write a
<type>_table.yaml file is created in DIR for each TYPE, or for every struct
when none are named; existing files are kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, types := args[0], args[1:]
			s := scaffold.New(scaffold.Options{DryRun: dryRun})
			if write || dryRun {
				return s.Generate(dir, types...)
			}
			if len(types) != 1 {
				return fmt.Errorf("name exactly one TYPE, or use --write")
			}
			return s.Write(cmd.OutOrStdout(), dir, types[0])
		},
	}

	scaffoldCommand.Flags().BoolVarP(&write, "write", "w", false, "write <type>_table.yaml files into DIR")
	scaffoldCommand.Flags().BoolVar(&dryRun, "dry-run", false, "show which files --write would create")
	RootCommand.AddCommand(scaffoldCommand)
}
