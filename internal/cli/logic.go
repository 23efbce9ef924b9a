package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/filestamp/internal/export"
	"github.com/idelchi/filestamp/internal/filestamp"
)

func logic(ctx context.Context, opts options, cfg filestamp.Config, stdout, stderr io.Writer) error {
	enableProgress := opts.Print == PrintTableFormat &&
		!opts.Debug &&
		isTerminal(stderr)

	// Simple progress callback that prints directly to stderr
	var progressHook func(processed, total int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(processed, total int64) {
			msg := fmt.Sprintf("Analyzing… %s/%s files",
				humanize.Comma(processed), humanize.Comma(total))
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := filestamp.Run(ctx, opts.Path, cfg, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if result.Cancelled {
		color.New(color.FgYellow).Fprintf(stderr, "Scan interrupted: %d of %d files analyzed\n", //nolint:errcheck // Console output
			len(result.Records), result.Candidates)
	}

	if !opts.Quiet {
		if err := printResult(result, opts.Print, stdout); err != nil {
			return err
		}
	}

	if opts.NoExport {
		return nil
	}

	path, err := export.Export(result.Records, cfg.Format, cfg.Output)
	if err != nil {
		return err
	}

	if opts.Print == PrintTableFormat {
		color.New(color.FgGreen).Fprintf(stderr, "Results exported to %s\n", path) //nolint:errcheck // Console output
	}

	return nil
}

func printResult(result *filestamp.Result, format string, w io.Writer) error {
	switch format {
	case PrintJSONFormat:
		return PrintJSON(result, w)
	case PrintTableFormat:
		return PrintTable(result, w)
	case PrintPathsFormat:
		return PrintPaths(result, w)
	default:
		return fmt.Errorf("unknown print format: %s", format)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
