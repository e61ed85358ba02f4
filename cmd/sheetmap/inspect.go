package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sheet-mapper/header"
	"sheet-mapper/sheetmap"
)

func newInspectCmd(g *globals) *cobra.Command {
	var (
		fields    []string
		aliases   map[string]string
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Reconcile a sheet's header row against field names",
		Long: `Match the header row of FILE against the given field names and print
the resulting column map with its diagnostics.

Example: sheetmap inspect people.xlsx --fields Name,Email,Age --alias Email=Contact`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}

			if threshold != 0 {
				cfg.MatchingThreshold = threshold
			}

			if len(aliases) > 0 && cfg.HumanReadableHeaders == nil {
				cfg.HumanReadableHeaders = make(map[string]string, len(aliases))
			}

			for field, label := range aliases {
				cfg.HumanReadableHeaders[field] = label
			}

			r, err := sheetmap.OpenFile(args[0], cfg)
			if err != nil {
				return err
			}
			defer r.Close()

			cm, diags, err := r.Reconcile(fields)
			if err != nil {
				return err
			}

			printColumnMap(cmd, r.SheetName(), cm)

			for _, d := range slices.Concat(diags.Errors, diags.Warnings, diags.Infos) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d.Severity, d)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Field names in declaration order")
	cmd.Flags().StringToStringVar(&aliases, "alias", nil, "Header alias as field=Label (repeatable)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Matching threshold 1-100 (default from config)")
	_ = cmd.MarkFlagRequired("fields")

	return cmd
}

func printColumnMap(cmd *cobra.Command, sheet string, cm *header.ColumnMap) {
	fmt.Fprintf(cmd.OutOrStdout(), "sheet %q\n", sheet)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tHEADER\tFIELD\tSOURCE\tSCORE")

	for _, c := range cm.Columns() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", c.Index, c.Header, c.Field, c.Source, c.Score)
	}

	_ = tw.Flush()

	for _, u := range cm.Unmapped() {
		line := fmt.Sprintf("unmapped %s: %s", u.Field, u.Reason)

		if len(u.Suggestions) > 0 {
			hints := make([]string, len(u.Suggestions))
			for i, s := range u.Suggestions {
				hints[i] = fmt.Sprintf("%q (%d)", s.Header, s.Score)
			}

			line += "; closest " + strings.Join(hints, ", ")
		}

		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
