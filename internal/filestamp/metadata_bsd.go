//go:build darwin || freebsd

package filestamp

import (
	"time"

	"golang.org/x/sys/unix"
)

// readMetadata captures size and all three timestamps with a single stat call.
func readMetadata(path string) (metadata, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return metadata{}, err
	}

	return metadata{
		size:     uint64(st.Size), //nolint:gosec // Sizes are never negative
		created:  time.Unix(st.Btim.Unix()),
		modified: time.Unix(st.Mtim.Unix()),
		accessed: time.Unix(st.Atim.Unix()),
	}, nil
}
