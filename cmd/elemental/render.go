package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/elemental"
	"github.com/pthm/elemental/lib/encoding"
)

type renderParams struct {
	config    string
	data      string
	settings  string
	bodyOnly  bool
	developer bool
}

func init() {
	var params renderParams

	renderCommand := &cobra.Command{
		Use:   "render",
		Short: "Render a table config to HTML",
		Long: `Render a table configuration against a list of records and write the HTML
to standard output.

The config and data files may be YAML, JSON or msgpack, chosen by extension.
The data file holds a list of records:

  - id: 1
    name: Ada
  - id: 2
    name: Grace`,
		PreRunE: func(*cobra.Command, []string) error {
			if params.config == "" {
				return fmt.Errorf("--config is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), params)
		},
	}

	renderCommand.Flags().StringVarP(&params.config, "config", "c", "", "table config file")
	renderCommand.Flags().StringVarP(&params.data, "data", "d", "", "records file (omit for an empty table)")
	renderCommand.Flags().StringVarP(&params.settings, "settings", "s", "", "settings file for icons, routes and formats")
	renderCommand.Flags().BoolVar(&params.bodyOnly, "body-only", false, "render only the table body rows")
	renderCommand.Flags().BoolVar(&params.developer, "developer", false, "show developer columns")
	RootCommand.AddCommand(renderCommand)
}

func runRender(ctx context.Context, out io.Writer, params renderParams) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := loadSettings(params.settings)
	if err != nil {
		return err
	}
	b := s.builder(logger)

	cfg, err := elemental.LoadTableConfigFile(params.config)
	if err != nil {
		return err
	}

	records, err := loadRecords(params.data)
	if err != nil {
		return err
	}
	logger.WithField("config", params.config).WithField("records", len(records)).Debug("rendering")

	ctx = elemental.WithDeveloperMode(ctx, params.developer)
	render := b.Table
	if params.bodyOnly {
		render = b.TableBody
	}
	html, err := render(ctx, cfg, records)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, html)
	return err
}

// loadRecords decodes a list of records. An empty path yields none.
func loadRecords(path string) ([]elemental.Record, error) {
	if path == "" {
		return nil, nil
	}
	f, err := encoding.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := encoding.Unmarshal(f, data, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return elemental.Rows(rows), nil
}
