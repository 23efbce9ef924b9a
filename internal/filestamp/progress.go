package filestamp

import (
	"context"
	"time"
)

// startProgressReporter invokes hook(processed, total) on each tick until the
// returned stop function is called. stop waits for the reporter to exit, so
// hook is never called after stop returns.
func startProgressReporter(ctx context.Context, s *Scanner, hook func(int64, int64), interval time.Duration) (stop func()) {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(s.processed.Load(), s.candidates.Load())
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
