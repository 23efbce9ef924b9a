package filestamp_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/filestamp/internal/filestamp"
)

func TestFilterCriteriaAccept(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 12, 0, 0, 0, time.Local)
	}

	record := filestamp.FileRecord{
		Path:    "/data/report.txt",
		Size:    50,
		Created: filestamp.FormatTime(day(10)),
	}

	tests := []struct {
		name   string
		filter filestamp.FilterCriteria
		want   bool
	}{
		{"accept all", filestamp.AcceptAll(), true},
		{"extension match", filestamp.FilterCriteria{Extension: ".txt", SizeMax: math.MaxUint64}, true},
		{"extension mismatch", filestamp.FilterCriteria{Extension: ".log", SizeMax: math.MaxUint64}, false},
		{"extension is case sensitive", filestamp.FilterCriteria{Extension: ".TXT", SizeMax: math.MaxUint64}, false},
		{"size inside", filestamp.FilterCriteria{SizeMin: 20, SizeMax: 80}, true},
		{"size below", filestamp.FilterCriteria{SizeMin: 51, SizeMax: 80}, false},
		{"size above", filestamp.FilterCriteria{SizeMin: 0, SizeMax: 49}, false},
		{"size exact", filestamp.FilterCriteria{SizeMin: 50, SizeMax: 50}, true},
		{"created after open", filestamp.FilterCriteria{SizeMax: math.MaxUint64, CreatedBefore: day(11)}, true},
		{"created before open", filestamp.FilterCriteria{SizeMax: math.MaxUint64, CreatedAfter: day(9)}, true},
		{"created too early", filestamp.FilterCriteria{SizeMax: math.MaxUint64, CreatedAfter: day(11)}, false},
		{"created too late", filestamp.FilterCriteria{SizeMax: math.MaxUint64, CreatedBefore: day(9)}, false},
		{"created bounds inclusive", filestamp.FilterCriteria{SizeMax: math.MaxUint64, CreatedAfter: day(10), CreatedBefore: day(10)}, true},
		{
			"all predicates must hold",
			filestamp.FilterCriteria{Extension: ".txt", SizeMin: 60, SizeMax: 80, CreatedAfter: day(1)},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.filter.Accept(record))
		})
	}
}

func TestFilterCriteriaExtensionUsesFileName(t *testing.T) {
	t.Parallel()

	filter := filestamp.FilterCriteria{Extension: "txt"}

	assert.True(t, filter.MatchExtension("/dir.txt/notes.txt"))
	assert.False(t, filter.MatchExtension("/dir.txt/notes.md"))
}

func TestSizeBoundaryAcceptsOnlyExactSize(t *testing.T) {
	t.Parallel()

	filter, err := filestamp.NewFilterCriteria("", 100, 100, time.Time{}, time.Time{})
	require.NoError(t, err)

	for size := uint64(95); size <= 105; size++ {
		assert.Equal(t, size == 100, filter.MatchSize(size), "size %d", size)
	}
}

func TestNewFilterCriteriaRejectsInvertedRanges(t *testing.T) {
	t.Parallel()

	_, err := filestamp.NewFilterCriteria("", 10, 5, time.Time{}, time.Time{})
	require.ErrorIs(t, err, filestamp.ErrInvalidFilterConfig)

	now := time.Now()
	_, err = filestamp.NewFilterCriteria("", 0, 10, now, now.Add(-time.Hour))
	require.ErrorIs(t, err, filestamp.ErrInvalidFilterConfig)

	_, err = filestamp.NewFilterCriteria(".go", 5, 5, now, now)
	require.NoError(t, err)
}
