package scaffold

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pthm/elemental"
)

const header = "# Generated by elemental scaffold. Edit freely; it is not regenerated.\n"

// Write encodes the config for typeName as YAML to w.
func (s *Scaffolder) Write(w io.Writer, dir, typeName string) error {
	cfg, err := s.Columns(dir, typeName)
	if err != nil {
		return err
	}
	data, err := elemental.MarshalTableConfig(cfg, "yaml")
	if err != nil {
		return fmt.Errorf("encode %s: %w", typeName, err)
	}
	_, err = io.WriteString(w, header+string(data))
	return err
}

// Generate writes <type>_table.yaml into dir for each named struct, or for
// every struct in the package when no names are given. Existing files are
// left alone.
func (s *Scaffolder) Generate(dir string, typeNames ...string) error {
	if len(typeNames) == 0 {
		names, err := s.Structs(dir)
		if err != nil {
			return err
		}
		typeNames = names
	}

	for _, name := range typeNames {
		outputFile := filepath.Join(dir, snakeCase(name)+"_table.yaml")
		if _, err := os.Stat(outputFile); err == nil {
			fmt.Printf("skipping %s (exists)\n", outputFile)
			continue
		}

		fmt.Printf("generating %s\n", outputFile)
		if s.opts.DryRun {
			continue
		}

		var buf bytes.Buffer
		if err := s.Write(&buf, dir, name); err != nil {
			return err
		}
		if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}
