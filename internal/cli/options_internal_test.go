//nolint:testpackage // Exercises unexported option handling
package cli

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/filestamp/internal/filestamp"
)

func defaultOptions() options {
	return options{
		Threads:   filestamp.DefaultThreads,
		Recursive: true,
		MinSize:   "0",
		Sort:      "created",
		Format:    "csv",
		Output:    filestamp.DefaultOutput,
		Print:     PrintTableFormat,
	}
}

func TestOptionsConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := defaultOptions().Config()
	require.NoError(t, err)

	want := filestamp.DefaultConfig()
	assert.Equal(t, want.Threads, cfg.Threads)
	assert.Equal(t, want.Filter, cfg.Filter)
	assert.Equal(t, want.SortKey, cfg.SortKey)
	assert.Equal(t, want.Format, cfg.Format)
	assert.Equal(t, uint64(math.MaxUint64), cfg.Filter.SizeMax)
}

func TestOptionsConfigParsesValues(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.MinSize = "1KB"
	opts.MaxSize = "2 MiB"
	opts.Sort = "Accessed"
	opts.Format = "excel"
	opts.Extension = ".log"
	opts.After = "2024-01-01"
	opts.Before = "2024-01-31"

	cfg, err := opts.Config()
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), cfg.Filter.SizeMin)
	assert.Equal(t, uint64(2<<20), cfg.Filter.SizeMax)
	assert.Equal(t, filestamp.SortAccessed, cfg.SortKey)
	assert.Equal(t, filestamp.FormatSpreadsheet, cfg.Format)
	assert.Equal(t, ".log", cfg.Filter.Extension)
	assert.Equal(t, "2024-01-01 00:00:00", filestamp.FormatTime(cfg.Filter.CreatedAfter))
	assert.Equal(t, "2024-01-31 23:59:59", filestamp.FormatTime(cfg.Filter.CreatedBefore))
}

func TestOptionsConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*options)
		target error
	}{
		{"inverted sizes", func(o *options) { o.MinSize = "10KB"; o.MaxSize = "1KB" }, filestamp.ErrInvalidFilterConfig},
		{"inverted dates", func(o *options) { o.After = "2024-02-01"; o.Before = "2024-01-01" }, filestamp.ErrInvalidFilterConfig},
		{"bad sort", func(o *options) { o.Sort = "size" }, filestamp.ErrInvalidConfig},
		{"bad format", func(o *options) { o.Format = "xml" }, filestamp.ErrInvalidConfig},
		{"zero threads", func(o *options) { o.Threads = 0 }, filestamp.ErrInvalidConfig},
		{"bad size", func(o *options) { o.MinSize = "lots" }, nil},
		{"bad date", func(o *options) { o.After = "yesterday" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := defaultOptions()
			tt.mutate(&opts)

			_, err := opts.Config()
			require.Error(t, err)

			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := parseDate("", false)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = parseDate("2024-05-06 07:08:09", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 6, 7, 8, 9, 0, time.Local), got)

	got, err = parseDate("2024-05-06", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 6, 0, 0, 0, 0, time.Local), got)
}

func TestMergeFileRespectsChangedFlags(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "filestamp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
threads: 12
recursive: false
ext: .md
sort: modified
output: from-file
`), 0o644))

	opts := defaultOptions()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVar(&opts.Output, "output", "", "")
	require.NoError(t, flags.Parse([]string{"--output", "from-flag"}))

	require.NoError(t, opts.mergeFile(path, flags))

	assert.Equal(t, 12, opts.Threads)
	assert.False(t, opts.Recursive)
	assert.Equal(t, ".md", opts.Extension)
	assert.Equal(t, "modified", opts.Sort)
	assert.Equal(t, "from-flag", opts.Output)
	assert.Equal(t, "csv", opts.Format)
}

func TestMergeFileRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "filestamp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thread: 3\n"), 0o644))

	opts := defaultOptions()
	require.Error(t, opts.mergeFile(path, pflag.NewFlagSet("test", pflag.ContinueOnError)))
}

func TestMergeFileEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "filestamp.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	opts := defaultOptions()
	require.NoError(t, opts.mergeFile(path, pflag.NewFlagSet("test", pflag.ContinueOnError)))
	assert.Equal(t, defaultOptions(), opts)
}
