//go:build windows

package filestamp

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

// readMetadata captures size and all three timestamps with a single stat call.
func readMetadata(path string) (metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return metadata{}, err
	}

	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return metadata{}, fmt.Errorf("unexpected stat type %T", info.Sys())
	}

	return metadata{
		size:     uint64(info.Size()), //nolint:gosec // Sizes are never negative
		created:  time.Unix(0, data.CreationTime.Nanoseconds()),
		modified: time.Unix(0, data.LastWriteTime.Nanoseconds()),
		accessed: time.Unix(0, data.LastAccessTime.Nanoseconds()),
	}, nil
}
