package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sheet-mapper/internal/analyze"
	"sheet-mapper/internal/gen"
)

func newGenCmd(g *globals) *cobra.Command {
	var (
		typeName    string
		outDir      string
		packageName string
		packagePath string
		suffix      string
	)

	cmd := &cobra.Command{
		Use:   "gen PATTERN",
		Short: "Generate a reflection-free descriptor for a record type",
		Long: `Load the Go package matched by PATTERN, find the struct named by --type and
write a <Type>Sheet descriptor built with schema.NewBuilder next to it.

Example: sheetmap gen --type Person ./examples/people`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := analyze.NewAnalyzer()

			graph, err := analyzer.LoadPackages(args[0])
			if err != nil {
				return err
			}

			info, err := analyzer.FindStruct(typeName)
			if err != nil {
				return err
			}

			opts := gen.DefaultOptions()
			opts.PackageName = packageName
			opts.PackagePath = packagePath

			if suffix != "" {
				opts.Suffix = suffix
			}

			file, err := gen.Generate(info, opts)
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = graph.Packages[info.ID.PkgPath].Dir
			}

			written, err := gen.WriteFiles([]gen.GeneratedFile{file}, dir)
			if err != nil {
				return err
			}

			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			if g.verbose && len(written) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s is up to date\n", file.Filename)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "Struct type name")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: the type's package directory)")
	cmd.Flags().StringVar(&packageName, "package", "", "Package name of the generated file (default: the type's package)")
	cmd.Flags().StringVar(&packagePath, "package-path", "", "Import path of the output package when it differs from the type's")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Descriptor variable suffix (default: Sheet)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
