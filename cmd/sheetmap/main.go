// Package main provides the CLI entrypoint for sheetmap.
//
// sheetmap works with spreadsheets the way the sheet mapper sees them:
//   - inspect: reconcile a header row against field names
//   - dump: print the rows of a sheet as YAML
//   - convert: copy a sheet between xlsx, xlsm and csv
//   - gen: generate reflection-free record descriptors
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"sheet-mapper/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// globals are the flags shared by every command.
type globals struct {
	configPath string
	sheet      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:           "sheetmap",
		Short:         "Map spreadsheet rows to typed records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&g.sheet, "sheet", "", "Sheet name (default: the active sheet)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(
		newInspectCmd(g),
		newDumpCmd(g),
		newConvertCmd(g),
		newGenCmd(g),
	)

	return rootCmd
}

// loadConfig reads the --config file, or the defaults, and attaches a
// logger writing to the command's stderr.
func (g *globals) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if g.configPath != "" {
		loaded, err := config.LoadFile(g.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if g.sheet != "" {
		cfg.SheetName = g.sheet
	}

	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}

	cfg.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return cfg, nil
}
