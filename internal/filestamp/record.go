package filestamp

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the fixed-width timestamp format used in records.
// Records always use local time, so string order equals chronological order.
const TimeLayout = "2006-01-02 15:04:05"

// Field names of a FileRecord, in export order.
//
//nolint:gochecknoglobals // Schema constant
var Fields = []string{"file", "size", "created", "modified", "accessed"}

// FileRecord is the metadata snapshot of a single file.
type FileRecord struct {
	// Path is the absolute path of the file.
	Path string `json:"file"`
	// Size is the size in bytes.
	Size uint64 `json:"size"`
	// Created is the creation (birth) time, or the inode change time where the filesystem lacks one.
	Created string `json:"created"`
	// Modified is the last modification time.
	Modified string `json:"modified"`
	// Accessed is the last access time.
	Accessed string `json:"accessed"`
}

// metadata holds the raw values read by a single stat call.
type metadata struct {
	size     uint64
	created  time.Time
	modified time.Time
	accessed time.Time
}

// FormatTime renders t in the record timestamp layout.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

func newFileRecord(path string, md metadata) FileRecord {
	return FileRecord{
		Path:     path,
		Size:     md.size,
		Created:  FormatTime(md.created),
		Modified: FormatTime(md.modified),
		Accessed: FormatTime(md.accessed),
	}
}

// SortKey selects the timestamp records are ordered by.
type SortKey string

const (
	// SortCreated orders by creation time.
	SortCreated SortKey = "created"
	// SortModified orders by modification time.
	SortModified SortKey = "modified"
	// SortAccessed orders by access time.
	SortAccessed SortKey = "accessed"
)

// SortKeys lists the accepted sort keys.
//
//nolint:gochecknoglobals // Config constant
var SortKeys = []SortKey{SortCreated, SortModified, SortAccessed}

// ParseSortKey parses a sort key name (case-insensitive).
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortCreated, SortModified, SortAccessed:
		return key, nil
	default:
		return "", fmt.Errorf("%w: invalid sort key %q: must be one of %v", ErrInvalidConfig, s, SortKeys)
	}
}

// Timestamp returns the record's value for the given key.
func (r FileRecord) Timestamp(key SortKey) string {
	switch key {
	case SortModified:
		return r.Modified
	case SortAccessed:
		return r.Accessed
	default:
		return r.Created
	}
}
