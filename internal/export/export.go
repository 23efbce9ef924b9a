package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/idelchi/filestamp/internal/filestamp"
)

// SheetName is the name of the single worksheet in spreadsheet exports.
const SheetName = "Results"

// ErrExportIO marks failures of the export step. Scan results are unaffected.
var ErrExportIO = errors.New("export failed")

// Filename returns "<base>.<ext>" for the format.
func Filename(base string, format filestamp.Format) string {
	return base + "." + format.Extension()
}

// Export writes records to "<base>.<ext>" and returns the written path.
// The records are only read, so a failed export can be retried in any format.
func Export(records []filestamp.FileRecord, format filestamp.Format, base string) (string, error) {
	path := Filename(base, format)

	err := writeAtomic(path, func(w io.Writer) error {
		return Write(w, records, format)
	})
	if err != nil {
		return "", fmt.Errorf("%w: writing %s: %w", ErrExportIO, path, err)
	}

	return path, nil
}

// Write encodes records to w in the given format.
func Write(w io.Writer, records []filestamp.FileRecord, format filestamp.Format) error {
	switch format {
	case filestamp.FormatCSV:
		return WriteCSV(w, records)
	case filestamp.FormatJSON:
		return WriteJSON(w, records)
	case filestamp.FormatSpreadsheet:
		return WriteSpreadsheet(w, records)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

// row renders a record in field order.
func row(r filestamp.FileRecord) []string {
	return []string{r.Path, strconv.FormatUint(r.Size, 10), r.Created, r.Modified, r.Accessed}
}

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(w io.Writer, records []filestamp.FileRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(filestamp.Fields); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range records {
		if err := writer.Write(row(r)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// WriteJSON writes a single indented array, "[]" when there are no records.
func WriteJSON(w io.Writer, records []filestamp.FileRecord) error {
	if records == nil {
		records = []filestamp.FileRecord{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}

	return nil
}

// WriteSpreadsheet writes a single-sheet xlsx workbook with a header row.
func WriteSpreadsheet(w io.Writer, records []filestamp.FileRecord) (err error) {
	file := excelize.NewFile()

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	stream, err := file.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet writer: %w", err)
	}

	header := make([]any, len(filestamp.Fields))
	for i, field := range filestamp.Fields {
		header[i] = field
	}

	if err := stream.SetRow("A1", header); err != nil {
		return fmt.Errorf("writing sheet header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		if err := stream.SetRow(cell, []any{r.Path, r.Size, r.Created, r.Modified, r.Accessed}); err != nil {
			return fmt.Errorf("writing sheet row %d: %w", i+2, err)
		}
	}

	if err := stream.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("encoding workbook: %w", err)
	}

	return nil
}
