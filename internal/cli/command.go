package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/filestamp/internal/filestamp"
	"github.com/idelchi/filestamp/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Console output formats.
const (
	PrintTableFormat = "table"
	PrintJSONFormat  = "json"
	PrintPathsFormat = "paths"
)

//nolint:gochecknoglobals // Config constant
var allowedPrints = []string{PrintTableFormat, PrintJSONFormat, PrintPathsFormat}

// Execute runs the CLI with the process arguments. An interrupt cancels the scan.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.Command().ExecuteContext(ctx)
}

// Command builds the root command.
//
//nolint:funlen // Flag declarations
func (c CLI) Command() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "filestamp [flags] [path]",
		Short: "Collect file timestamps, filter and sort them, and export the result",
		Long: heredoc.Doc(`
			filestamp scans a directory tree and reports size, creation,
			modification and access times for every file.

			Positional Arguments:
			  path                   Directory to scan. Defaults to current directory if not specified.

			Files are filtered by extension, size range and creation date range,
			sorted by the chosen timestamp and exported to csv, json or an xlsx
			spreadsheet named <output>.<ext>.

			Settings are taken from defaults, then the --config YAML file, then
			flags given on the command line.

			The '-i' flag prints a zsh integration script that pipes the scan
			result into 'fzf' for interactive selection.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), rendered)

				return nil
			}

			if !slices.Contains(allowedPrints, opts.Print) {
				return fmt.Errorf("invalid print format %q: must be one of %v", opts.Print, allowedPrints)
			}

			if len(args) == 0 {
				opts.Path = "."
			} else {
				opts.Path = args[0]
			}

			if opts.ConfigFile != "" {
				if err := opts.mergeFile(opts.ConfigFile, cmd.Flags()); err != nil {
					return err
				}
			}

			cfg, err := opts.Config()
			if err != nil {
				return err
			}

			cfg.LogOutput = cmd.ErrOrStderr()

			return logic(cmd.Context(), opts, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	defaults := filestamp.DefaultConfig()

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.IntVarP(&opts.Threads, "threads", "j", defaults.Threads, "Number of worker threads")
	flags.BoolVarP(&opts.Recursive, "recursive", "r", defaults.Recursive, "Scan subdirectories (use --recursive=false to disable)")
	flags.BoolVarP(&opts.FollowSymlinks, "follow-symlinks", "L", defaults.FollowSymlinks, "Follow symbolic links to directories")
	flags.StringVarP(&opts.Extension, "ext", "x", "", "Only include files ending with this suffix (e.g., .txt)")
	flags.StringVar(&opts.MinSize, "min-size", "0", "Minimum file size (e.g., 1KB)")
	flags.StringVar(&opts.MaxSize, "max-size", "", "Maximum file size (e.g., 10MiB), empty for unbounded")
	flags.StringVar(&opts.After, "after", "", "Only include files created at or after this date (YYYY-MM-DD[ HH:MM:SS])")
	flags.StringVar(&opts.Before, "before", "", "Only include files created at or before this date (YYYY-MM-DD[ HH:MM:SS])")
	flags.StringVarP(&opts.Sort, "sort", "s", string(defaults.SortKey), "Sort by: created, modified or accessed")
	flags.StringVarP(&opts.Format, "format", "f", string(defaults.Format), "Export format: csv, json or spreadsheet")
	flags.StringVarP(&opts.Output, "output", "o", defaults.Output, "Export file base name")
	flags.BoolVar(&opts.NoExport, "no-export", false, "Skip writing the export file")
	flags.StringVar(&opts.Print, "print", PrintTableFormat, "Console output: table, json or paths")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress console output of the results")
	flags.StringVarP(&opts.ConfigFile, "config", "c", "", "YAML configuration file")
	flags.BoolVar(&opts.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&opts.Integration, "init", "i", false, "Output init script for shell usage")

	return cmd
}
