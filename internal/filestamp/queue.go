package filestamp

import "sync"

// WorkQueue is a FIFO of pending paths with an outstanding-task counter.
//
// The counter is incremented by Push and decremented by Done or Cancel, so it
// counts work that was enqueued but not yet finished, including items a worker
// has dequeued and is still processing. Completion is the counter reaching
// zero, never an empty queue.
type WorkQueue struct {
	mu          sync.Mutex
	ready       *sync.Cond // signaled when an item is pushed or the queue closes
	idle        *sync.Cond // broadcast when outstanding drops to zero
	items       []string
	head        int
	closed      bool
	outstanding int
}

// NewWorkQueue creates an open, empty queue.
func NewWorkQueue() *WorkQueue {
	q := &WorkQueue{}
	q.ready = sync.NewCond(&q.mu)
	q.idle = sync.NewCond(&q.mu)

	return q
}

// Push appends a path and increments the outstanding counter.
func (q *WorkQueue) Push(path string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	q.items = append(q.items, path)
	q.outstanding++
	q.ready.Signal()

	return nil
}

// Close stops the queue from accepting new items. Pending items remain poppable.
func (q *WorkQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.ready.Broadcast()
}

// Pop removes the oldest path. It blocks while the queue is empty and open,
// and returns false once the queue is empty and closed.
func (q *WorkQueue) Pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.pending() == 0 && !q.closed {
		q.ready.Wait()
	}

	if q.pending() == 0 {
		return "", false
	}

	path := q.items[q.head]
	q.items[q.head] = ""
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return path, true
}

// Done marks one dequeued item as finished, whatever its outcome.
func (q *WorkQueue) Done() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.finish(1)
}

// Cancel drops every pending item and marks each as finished.
// It returns the number of dropped items.
func (q *WorkQueue) Cancel() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.pending()
	if n == 0 {
		return 0
	}

	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
	q.finish(n)

	return n
}

// Wait blocks until every pushed item has been finished or cancelled.
func (q *WorkQueue) Wait() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.outstanding > 0 {
		q.idle.Wait()
	}
}

// Outstanding returns the number of unfinished items, queued or in flight.
func (q *WorkQueue) Outstanding() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.outstanding
}

// Len returns the number of queued items not yet popped.
func (q *WorkQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pending()
}

func (q *WorkQueue) pending() int {
	return len(q.items) - q.head
}

// finish must be called with mu held.
func (q *WorkQueue) finish(n int) {
	q.outstanding -= n
	if q.outstanding < 0 {
		panic("filestamp: WorkQueue.Done called more times than Push")
	}

	if q.outstanding == 0 {
		q.idle.Broadcast()
	}
}
