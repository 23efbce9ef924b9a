package filestamp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Walker enumerates candidate files under Root. Directories and special files are never yielded.
type Walker struct {
	// Root is the directory to enumerate.
	Root string
	// Recursive enables descending into subdirectories.
	Recursive bool
	// FollowSymlinks enables traversing symlinked directories.
	FollowSymlinks bool
	// OnSkip is called for entries that could not be probed. They are skipped, not fatal.
	OnSkip func(path string, err error)
}

// checkRoot verifies that root exists and is a directory.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: accessing path %q: %w", ErrRootPathNotFound, root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: path %q is not a directory", ErrRootPathNotFound, root)
	}

	return nil
}

// Walk calls fn once per candidate file path. Calls to fn are serialized.
// A missing root fails before fn is ever called; an error from fn or a
// cancelled ctx aborts the walk.
func (w Walker) Walk(ctx context.Context, fn func(path string) error) error {
	if err := checkRoot(w.Root); err != nil {
		return err
	}

	if !w.Recursive {
		return w.walkFlat(ctx, fn)
	}

	// fastwalk invokes the callback from several goroutines.
	var mu sync.Mutex

	conf := &fastwalk.Config{
		Follow: w.FollowSymlinks,
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.skip(path, err)

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			return nil
		}

		ok, err := w.candidate(path, d)
		if err != nil {
			w.skip(path, err)

			return nil
		}

		if !ok {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()

		return fn(path)
	})
	if err != nil {
		return fmt.Errorf("walking %q: %w", w.Root, err)
	}

	return nil
}

// walkFlat visits only the entries directly under Root.
func (w Walker) walkFlat(ctx context.Context, fn func(path string) error) error {
	entries, err := os.ReadDir(w.Root)
	if err != nil {
		return fmt.Errorf("%w: reading directory %q: %w", ErrRootPathNotFound, w.Root, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("walking %q: %w", w.Root, err)
		}

		if entry.IsDir() {
			continue
		}

		path := filepath.Join(w.Root, entry.Name())

		ok, err := w.candidate(path, entry)
		if err != nil {
			w.skip(path, err)

			continue
		}

		if !ok {
			continue
		}

		if err := fn(path); err != nil {
			return err
		}
	}

	return nil
}

// candidate reports whether a non-directory entry is a file worth scanning.
// Symlinks are probed once: links to files are candidates, links to
// directories are left to the walk itself, broken links are errors.
func (w Walker) candidate(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}

	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := fastwalk.StatDirEntry(path, d)
	if err != nil {
		return false, err
	}

	return info.Mode().IsRegular(), nil
}

func (w Walker) skip(path string, err error) {
	if w.OnSkip != nil && !errors.Is(err, fs.SkipDir) {
		w.OnSkip(path, err)
	}
}
