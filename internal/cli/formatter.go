package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/filestamp/internal/filestamp"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(result *filestamp.Result, writer io.Writer) error {
	out := struct {
		*filestamp.Result
		Skipped int `json:"skipped"`
	}{
		Result:  result,
		Skipped: len(result.Advisories),
	}

	if out.Records == nil {
		out.Records = []filestamp.FileRecord{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintPaths outputs one path per line in sorted order.
func PrintPaths(result *filestamp.Result, writer io.Writer) error {
	for _, r := range result.Records {
		if _, err := fmt.Fprintln(writer, r.Path); err != nil {
			return err
		}
	}

	return nil
}

// PrintTable outputs the records in human-readable table format.
func PrintTable(result *filestamp.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "\nTimestamp analysis of '%s' (sorted by %s):\n\n", result.Root, result.SortKey)
	fmt.Fprintln(w, "File\tSize\tCreated\tModified\tAccessed")

	var total uint64

	for _, r := range result.Records {
		total += r.Size
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Path, humanize.IBytes(r.Size), r.Created, r.Modified, r.Accessed)
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files analyzed:\t%d\n", len(result.Records))
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n", humanize.IBytes(total), total)

	if skipped := len(result.Advisories); skipped > 0 {
		fmt.Fprintf(w, "Skipped (errors):\t%d\n", skipped)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
