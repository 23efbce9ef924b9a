package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/filestamp/internal/filestamp"
)

// Accepted layouts for date flags, interpreted in local time.
const (
	dateLayout = "2006-01-02"
	timeLayout = filestamp.TimeLayout
)

// options holds the raw settings collected from flags and the config file.
type options struct {
	// Path is the directory to scan.
	Path string
	// Threads is the worker pool size.
	Threads int
	// Recursive enables descending into subdirectories.
	Recursive bool
	// FollowSymlinks enables traversing symlinked directories.
	FollowSymlinks bool
	// Extension is the file name suffix filter.
	Extension string
	// MinSize is the humanized minimum size.
	MinSize string
	// MaxSize is the humanized maximum size, empty for unbounded.
	MaxSize string
	// After is the creation date lower bound.
	After string
	// Before is the creation date upper bound.
	Before string
	// Sort is the sort key name.
	Sort string
	// Format is the export format name.
	Format string
	// Output is the export file base name.
	Output string
	// NoExport skips the export step.
	NoExport bool
	// Print is the console output format.
	Print string
	// Quiet suppresses console output of the results.
	Quiet bool
	// ConfigFile is the YAML configuration path.
	ConfigFile string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Integration indicates whether to output integration script.
	Integration bool
}

// fileSettings is the YAML configuration file layout. Absent keys keep their current value.
type fileSettings struct {
	Threads        *int    `yaml:"threads"`
	Recursive      *bool   `yaml:"recursive"`
	FollowSymlinks *bool   `yaml:"follow_symlinks"`
	Extension      *string `yaml:"ext"`
	MinSize        *string `yaml:"min_size"`
	MaxSize        *string `yaml:"max_size"`
	After          *string `yaml:"after"`
	Before         *string `yaml:"before"`
	Sort           *string `yaml:"sort"`
	Format         *string `yaml:"format"`
	Output         *string `yaml:"output"`
}

// mergeFile loads a YAML file into o. Values of flags set on the command line are kept.
func (o *options) mergeFile(path string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var file fileSettings

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config file %q: %w", path, err)
	}

	mergeValue(&o.Threads, file.Threads, flags.Changed("threads"))
	mergeValue(&o.Recursive, file.Recursive, flags.Changed("recursive"))
	mergeValue(&o.FollowSymlinks, file.FollowSymlinks, flags.Changed("follow-symlinks"))
	mergeValue(&o.Extension, file.Extension, flags.Changed("ext"))
	mergeValue(&o.MinSize, file.MinSize, flags.Changed("min-size"))
	mergeValue(&o.MaxSize, file.MaxSize, flags.Changed("max-size"))
	mergeValue(&o.After, file.After, flags.Changed("after"))
	mergeValue(&o.Before, file.Before, flags.Changed("before"))
	mergeValue(&o.Sort, file.Sort, flags.Changed("sort"))
	mergeValue(&o.Format, file.Format, flags.Changed("format"))
	mergeValue(&o.Output, file.Output, flags.Changed("output"))

	return nil
}

func mergeValue[T any](dst *T, src *T, keep bool) {
	if src != nil && !keep {
		*dst = *src
	}
}

// Config converts the raw settings into a validated scan configuration.
func (o options) Config() (filestamp.Config, error) {
	cfg := filestamp.DefaultConfig()

	sortKey, err := filestamp.ParseSortKey(o.Sort)
	if err != nil {
		return cfg, err
	}

	format, err := filestamp.ParseFormat(o.Format)
	if err != nil {
		return cfg, err
	}

	sizeMin, err := parseSize(o.MinSize, 0)
	if err != nil {
		return cfg, fmt.Errorf("invalid min-size: %w", err)
	}

	sizeMax, err := parseSize(o.MaxSize, math.MaxUint64)
	if err != nil {
		return cfg, fmt.Errorf("invalid max-size: %w", err)
	}

	after, err := parseDate(o.After, false)
	if err != nil {
		return cfg, fmt.Errorf("invalid after date: %w", err)
	}

	before, err := parseDate(o.Before, true)
	if err != nil {
		return cfg, fmt.Errorf("invalid before date: %w", err)
	}

	filter, err := filestamp.NewFilterCriteria(o.Extension, sizeMin, sizeMax, after, before)
	if err != nil {
		return cfg, err
	}

	cfg.Threads = o.Threads
	cfg.Recursive = o.Recursive
	cfg.FollowSymlinks = o.FollowSymlinks
	cfg.SortKey = sortKey
	cfg.Format = format
	cfg.Output = o.Output
	cfg.Filter = filter
	cfg.Debug = o.Debug

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseSize parses a humanized size, returning fallback for an empty string.
func parseSize(s string, fallback uint64) (uint64, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}

	return humanize.ParseBytes(s)
}

// parseDate parses a local date or timestamp. An empty string is an open bound.
// A bare date used as an upper bound covers the whole day.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.ParseInLocation(timeLayout, s, time.Local); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q does not match %q or %q", s, dateLayout, timeLayout)
	}

	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Second)
	}

	return t, nil
}
