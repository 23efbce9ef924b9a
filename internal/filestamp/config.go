package filestamp

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Defaults used by DefaultConfig.
const (
	DefaultThreads = 4
	DefaultOutput  = "timestamps_output"
)

// Format is an export file format.
type Format string

const (
	// FormatCSV writes comma separated values with a header row.
	FormatCSV Format = "csv"
	// FormatJSON writes a single JSON array of objects.
	FormatJSON Format = "json"
	// FormatSpreadsheet writes a single-sheet xlsx workbook.
	FormatSpreadsheet Format = "spreadsheet"
)

// Formats lists the accepted export formats.
//
//nolint:gochecknoglobals // Config constant
var Formats = []Format{FormatCSV, FormatJSON, FormatSpreadsheet}

// ParseFormat parses an export format name. "excel" and "xlsx" are accepted for spreadsheet.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatSpreadsheet:
		return f, nil
	case "excel", "xlsx":
		return FormatSpreadsheet, nil
	default:
		return "", fmt.Errorf("%w: invalid export format %q: must be one of %v", ErrInvalidConfig, s, Formats)
	}
}

// Extension returns the file extension for the format, without the leading dot.
func (f Format) Extension() string {
	if f == FormatSpreadsheet {
		return "xlsx"
	}

	return string(f)
}

// FilterCriteria selects which files are accepted.
// Zero values of Extension, CreatedAfter and CreatedBefore leave that side unconstrained.
type FilterCriteria struct {
	// Extension is a case-sensitive suffix the file name must end with.
	Extension string
	// SizeMin is the inclusive lower size bound in bytes.
	SizeMin uint64
	// SizeMax is the inclusive upper size bound in bytes.
	SizeMax uint64
	// CreatedAfter is the inclusive lower creation time bound.
	CreatedAfter time.Time
	// CreatedBefore is the inclusive upper creation time bound.
	CreatedBefore time.Time
}

// NewFilterCriteria builds validated filter criteria.
func NewFilterCriteria(ext string, sizeMin, sizeMax uint64, after, before time.Time) (FilterCriteria, error) {
	c := FilterCriteria{
		Extension:     ext,
		SizeMin:       sizeMin,
		SizeMax:       sizeMax,
		CreatedAfter:  after,
		CreatedBefore: before,
	}

	if err := c.Validate(); err != nil {
		return FilterCriteria{}, err
	}

	return c, nil
}

// AcceptAll returns criteria that accept every file.
func AcceptAll() FilterCriteria {
	return FilterCriteria{SizeMax: math.MaxUint64}
}

// Validate checks that both ranges are ordered.
func (c FilterCriteria) Validate() error {
	if c.SizeMin > c.SizeMax {
		return fmt.Errorf("%w: min size %d exceeds max size %d", ErrInvalidFilterConfig, c.SizeMin, c.SizeMax)
	}

	if !c.CreatedAfter.IsZero() && !c.CreatedBefore.IsZero() && c.CreatedAfter.After(c.CreatedBefore) {
		return fmt.Errorf("%w: date range start %s is after end %s",
			ErrInvalidFilterConfig, FormatTime(c.CreatedAfter), FormatTime(c.CreatedBefore))
	}

	return nil
}

// Config configures a scan. It is built once and read-only while a scan runs.
type Config struct {
	// Threads is the worker pool size.
	Threads int
	// Recursive enables descending into subdirectories.
	Recursive bool
	// FollowSymlinks enables traversing symlinked directories.
	FollowSymlinks bool
	// SortKey selects the timestamp results are ordered by.
	SortKey SortKey
	// Format is the export format.
	Format Format
	// Output is the export file base name.
	Output string
	// Filter selects accepted files.
	Filter FilterCriteria
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug enables debug output.
	Debug bool
	// LogOutput receives debug and advisory output. Nil means stderr.
	LogOutput io.Writer
}

// DefaultConfig returns the documented defaults: 4 threads, recursive, symlinks
// not followed, sorted by creation time, exported as csv to "timestamps_output",
// no filtering.
func DefaultConfig() Config {
	return Config{
		Threads:          DefaultThreads,
		Recursive:        true,
		SortKey:          SortCreated,
		Format:           FormatCSV,
		Output:           DefaultOutput,
		Filter:           AcceptAll(),
		ProgressInterval: DefaultProgressInterval,
	}
}

// Validate fails fast on any inconsistent setting.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("%w: thread count must be at least 1, got %d", ErrInvalidConfig, c.Threads)
	}

	if !slices.Contains(SortKeys, c.SortKey) {
		return fmt.Errorf("%w: invalid sort key %q: must be one of %v", ErrInvalidConfig, c.SortKey, SortKeys)
	}

	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: invalid export format %q: must be one of %v", ErrInvalidConfig, c.Format, Formats)
	}

	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output base name cannot be empty", ErrInvalidConfig)
	}

	return c.Filter.Validate()
}
