package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"sheet-mapper/sheetmap"
	"sheet-mapper/workbook"
)

func newConvertCmd(g *globals) *cobra.Command {
	var outSheet string

	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Copy a sheet into a workbook of another format",
		Long: `Read IN untyped and write its header and rows to OUT. Formats follow the
file extensions (.xlsx, .xlsm, .csv). Blank rows are dropped.

Example: sheetmap convert people.csv people.xlsx`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}

			inCfg := cfg.Clone()
			inCfg.Format = ""

			r, err := sheetmap.OpenFile(args[0], inCfg)
			if err != nil {
				return err
			}
			defer r.Close()

			var rows []map[string]string

			for row, err := range r.Rows(cmd.Context()) {
				if err != nil {
					return err
				}

				rows = append(rows, row)
			}

			var headers []string
			for _, c := range r.Columns().Columns() {
				headers = append(headers, c.Field)
			}

			outCfg := cfg.Clone()
			outCfg.SheetName = outSheet
			outCfg.HumanReadableHeaders = nil
			outCfg.Columns = nil

			if outCfg.Format, err = workbook.FormatFromPath(args[1]); err != nil {
				return err
			}

			w, err := sheetmap.NewWriter(outCfg)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.WriteRows(cmd.Context(), headers, slices.Values(rows)); err != nil {
				return err
			}

			f, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[1], err)
			}

			if err := w.Flush(f); err != nil {
				_ = f.Close()
				return err
			}

			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(rows), args[1])

			return nil
		},
	}

	cmd.Flags().StringVar(&outSheet, "out-sheet", "", "Sheet name in OUT (default: Sheet1)")

	return cmd
}
