package filestamp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Result is the outcome of a scan.
type Result struct {
	// Root is the absolute path that was scanned.
	Root string `json:"root"`
	// Records are the accepted files, stably sorted by SortKey.
	Records []FileRecord `json:"records"`
	// SortKey is the key Records are ordered by.
	SortKey SortKey `json:"sort_key"`
	// Candidates is the number of paths that were enqueued.
	Candidates int64 `json:"candidates"`
	// Advisories are the per-file failures that were skipped.
	Advisories []error `json:"-"`
	// Cancelled reports whether the scan stopped early.
	Cancelled bool `json:"cancelled"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Scanner owns the state of one scan run: its queue, result store and counters.
// Construct a fresh Scanner for every scan.
type Scanner struct {
	root string
	cfg  Config
	log  *logger

	queue *WorkQueue
	store *ResultStore

	candidates atomic.Int64
	processed  atomic.Int64

	advMu      sync.Mutex
	advisories []error

	used atomic.Bool
}

// NewScanner validates cfg and prepares a scan of root.
func NewScanner(root string, cfg Config) (*Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}

	return &Scanner{
		root:  abs,
		cfg:   cfg,
		log:   newLogger(cfg.Debug, cfg.LogOutput),
		queue: NewWorkQueue(),
		store: NewResultStore(),
	}, nil
}

// Run performs the scan once and blocks until every enqueued file is finished.
//
// The queue is populated completely before any worker starts. Workers are
// then joined after the outstanding-task counter reaches zero, and the frozen
// results are stably sorted. Cancelling ctx stops the walk, or makes workers
// drop the remaining queued files; the records accepted so far are returned
// with Cancelled set.
//
// Progress updates are sent to progressHook if provided.
func (s *Scanner) Run(ctx context.Context, progressHook func(processed, total int64)) (*Result, error) {
	if !s.used.CompareAndSwap(false, true) {
		return nil, ErrScannerUsed
	}

	start := time.Now()

	s.log.printf("scanning %s (threads=%d, recursive=%t, follow symlinks=%t)\n",
		s.root, s.cfg.Threads, s.cfg.Recursive, s.cfg.FollowSymlinks)

	if err := s.populate(ctx); err != nil {
		return nil, err
	}

	s.log.printf("queued %d candidate files\n", s.candidates.Load())

	stopProgress := startProgressReporter(ctx, s, progressHook, s.cfg.ProgressInterval)

	workers := s.startWorkers(ctx)
	s.queue.Wait()
	workers.Wait()
	stopProgress()

	records := s.store.Freeze()
	SortRecords(records, s.cfg.SortKey)

	if progressHook != nil {
		progressHook(s.processed.Load(), s.candidates.Load())
	}

	s.advMu.Lock()
	advisories := append([]error(nil), s.advisories...)
	s.advMu.Unlock()

	return &Result{
		Root:       s.root,
		Records:    records,
		SortKey:    s.cfg.SortKey,
		Candidates: s.candidates.Load(),
		Advisories: advisories,
		Cancelled:  ctx.Err() != nil,
		Elapsed:    time.Since(start),
	}, nil
}

// populate walks the root and pushes every candidate that passes the
// extension filter, then closes the queue.
func (s *Scanner) populate(ctx context.Context) error {
	defer s.queue.Close()

	walker := Walker{
		Root:           s.root,
		Recursive:      s.cfg.Recursive,
		FollowSymlinks: s.cfg.FollowSymlinks,
		OnSkip: func(path string, err error) {
			s.advise(&MetadataError{Path: path, Err: err})
		},
	}

	err := walker.Walk(ctx, func(path string) error {
		if !s.cfg.Filter.MatchExtension(path) {
			s.log.printf("excluding file (extension filter): %s\n", path)

			return nil
		}

		if err := s.queue.Push(path); err != nil {
			return err
		}

		s.candidates.Add(1)

		return nil
	})

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Leave the queued files to the workers, which cancel them.
		s.log.printf("walk interrupted: %v\n", err)

		return nil
	}

	return err
}

// startWorkers starts exactly Threads workers draining the queue.
func (s *Scanner) startWorkers(ctx context.Context) *sync.WaitGroup {
	var wg sync.WaitGroup //nolint:varnamelen // wg is idiomatic for WaitGroup

	for range s.cfg.Threads {
		wg.Go(func() {
			s.work(ctx)
		})
	}

	return &wg
}

func (s *Scanner) work(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			if n := s.queue.Cancel(); n > 0 {
				s.log.printf("cancelled %d queued files\n", n)
			}

			return
		}

		path, ok := s.queue.Pop()
		if !ok {
			return
		}

		s.process(path)
	}
}

// process handles one dequeued file. It always marks the task done.
func (s *Scanner) process(path string) {
	defer s.queue.Done()
	defer s.processed.Add(1)

	md, err := readMetadata(path)
	if err != nil {
		s.advise(&MetadataError{Path: path, Err: err})

		return
	}

	record := newFileRecord(path, md)
	if !s.cfg.Filter.Accept(record) {
		s.log.printf("excluding file (filter): %s\n", path)

		return
	}

	if err := s.store.Append(record); err != nil {
		s.log.warnf("dropping %s: %v\n", path, err)
	}
}

func (s *Scanner) advise(err error) {
	s.log.warnf("%v\n", err)

	s.advMu.Lock()
	defer s.advMu.Unlock()

	s.advisories = append(s.advisories, err)
}

// Run is a convenience wrapper that builds a Scanner for root and runs it.
func Run(ctx context.Context, root string, cfg Config, progressHook func(processed, total int64)) (*Result, error) {
	scanner, err := NewScanner(root, cfg)
	if err != nil {
		return nil, err
	}

	return scanner.Run(ctx, progressHook)
}
