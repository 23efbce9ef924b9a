package filestamp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/filestamp/internal/filestamp"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := filestamp.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Threads)
	assert.True(t, cfg.Recursive)
	assert.False(t, cfg.FollowSymlinks)
	assert.Equal(t, filestamp.SortCreated, cfg.SortKey)
	assert.Equal(t, filestamp.FormatCSV, cfg.Format)
	assert.Equal(t, "timestamps_output", cfg.Output)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*filestamp.Config)
		want   error
	}{
		{"zero threads", func(c *filestamp.Config) { c.Threads = 0 }, filestamp.ErrInvalidConfig},
		{"unknown sort key", func(c *filestamp.Config) { c.SortKey = "size" }, filestamp.ErrInvalidConfig},
		{"alias format is not canonical", func(c *filestamp.Config) { c.Format = "excel" }, filestamp.ErrInvalidConfig},
		{"empty output", func(c *filestamp.Config) { c.Output = " " }, filestamp.ErrInvalidConfig},
		{"inverted size range", func(c *filestamp.Config) { c.Filter.SizeMin = 10; c.Filter.SizeMax = 1 }, filestamp.ErrInvalidFilterConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := filestamp.DefaultConfig()
			tt.mutate(&cfg)

			require.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  filestamp.Format
		ext   string
	}{
		{"csv", filestamp.FormatCSV, "csv"},
		{"JSON", filestamp.FormatJSON, "json"},
		{"spreadsheet", filestamp.FormatSpreadsheet, "xlsx"},
		{"excel", filestamp.FormatSpreadsheet, "xlsx"},
		{" xlsx ", filestamp.FormatSpreadsheet, "xlsx"},
	}

	for _, tt := range tests {
		got, err := filestamp.ParseFormat(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.ext, got.Extension())
	}

	_, err := filestamp.ParseFormat("xml")
	require.ErrorIs(t, err, filestamp.ErrInvalidConfig)
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	for _, key := range filestamp.SortKeys {
		got, err := filestamp.ParseSortKey(string(key))
		require.NoError(t, err)
		assert.Equal(t, key, got)
	}

	got, err := filestamp.ParseSortKey("Modified")
	require.NoError(t, err)
	assert.Equal(t, filestamp.SortModified, got)

	_, err = filestamp.ParseSortKey("size")
	require.ErrorIs(t, err, filestamp.ErrInvalidConfig)
}
