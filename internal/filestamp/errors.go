package filestamp

import (
	"errors"
	"fmt"
)

var (
	// ErrRootPathNotFound is returned when the scan root does not exist or is not a directory.
	ErrRootPathNotFound = errors.New("root path not found")
	// ErrInvalidFilterConfig is returned when filter bounds are inconsistent.
	ErrInvalidFilterConfig = errors.New("invalid filter configuration")
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrFileMetadata marks per-file metadata failures. They are skipped, never fatal.
	ErrFileMetadata = errors.New("reading file metadata")
	// ErrQueueClosed is returned when pushing onto a closed WorkQueue.
	ErrQueueClosed = errors.New("work queue closed")
	// ErrStoreFrozen is returned when appending to a frozen ResultStore.
	ErrStoreFrozen = errors.New("result store frozen")
	// ErrScannerUsed is returned when a Scanner is run more than once.
	ErrScannerUsed = errors.New("scanner already used")
)

// MetadataError describes a file that was skipped because its metadata could not be read.
type MetadataError struct {
	// Path is the file that was skipped.
	Path string
	// Err is the underlying filesystem error.
	Err error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("%v for %q: %v", ErrFileMetadata, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *MetadataError) Unwrap() error {
	return e.Err
}

// Is reports ErrFileMetadata as a match so callers can classify advisories.
func (e *MetadataError) Is(target error) bool {
	return target == ErrFileMetadata //nolint:errorlint // Sentinel comparison
}
