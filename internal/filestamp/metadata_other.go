//go:build !linux && !darwin && !freebsd && !windows

package filestamp

import "os"

// readMetadata falls back to the portable FileInfo, which only carries the modification time.
func readMetadata(path string) (metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return metadata{}, err
	}

	return metadata{
		size:     uint64(info.Size()), //nolint:gosec // Sizes are never negative
		created:  info.ModTime(),
		modified: info.ModTime(),
		accessed: info.ModTime(),
	}, nil
}
