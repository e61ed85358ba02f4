package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sheet-mapper/sheetmap"
)

func newDumpCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the rows of a sheet as YAML",
		Long: `Read every non-blank row of FILE keyed by its header text and print the
rows as a YAML sequence of mappings.

Example: sheetmap dump people.csv --sheet Members`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}

			r, err := sheetmap.OpenFile(args[0], cfg)
			if err != nil {
				return err
			}
			defer r.Close()

			rows := []map[string]string{}

			for row, err := range r.Rows(cmd.Context()) {
				if err != nil {
					return err
				}

				rows = append(rows, row)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(rows); err != nil {
				return fmt.Errorf("encode rows: %w", err)
			}

			return enc.Close()
		},
	}

	return cmd
}
