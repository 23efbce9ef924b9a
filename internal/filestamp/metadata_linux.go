//go:build linux

package filestamp

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// readMetadata captures size and all three timestamps with a single statx call.
// Symlinks are followed. Filesystems without birth time report the inode change time as creation time.
func readMetadata(path string) (metadata, error) {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		return statMetadata(path)
	}

	if err != nil {
		return metadata{}, err
	}

	created := statxTime(stx.Ctime)
	if stx.Mask&unix.STATX_BTIME != 0 {
		created = statxTime(stx.Btime)
	}

	return metadata{
		size:     stx.Size,
		created:  created,
		modified: statxTime(stx.Mtime),
		accessed: statxTime(stx.Atime),
	}, nil
}

// statMetadata is used on kernels older than 4.11.
func statMetadata(path string) (metadata, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return metadata{}, err
	}

	return metadata{
		size:     uint64(st.Size), //nolint:gosec // Sizes are never negative
		created:  time.Unix(st.Ctim.Unix()),
		modified: time.Unix(st.Mtim.Unix()),
		accessed: time.Unix(st.Atim.Unix()),
	}, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
