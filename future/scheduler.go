package future

import (
	"context"
	"sync"
)

// Scheduler runs continuations.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Schedule calls f(fn).
func (f SchedulerFunc) Schedule(fn func()) { f(fn) }

// Goroutines runs every continuation on a new goroutine.
var Goroutines Scheduler = SchedulerFunc(func(fn func()) { go fn() })

// Queue is a scheduler driven by the caller, in the manner of an event loop:
// scheduled continuations wait in FIFO order until RunOne, Drain or Run
// executes them on the calling goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	signal  chan struct{}
}

var _ Scheduler = (*Queue)(nil)

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{signal: make(chan struct{}, 1)}
}

// Schedule enqueues fn.
func (q *Queue) Schedule(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Len returns the number of queued continuations.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// RunOne executes the oldest queued continuation. It reports false when the
// queue was empty.
func (q *Queue) RunOne() bool {
	q.mu.Lock()
	if len(q.pending) == 0 {
		q.mu.Unlock()
		return false
	}
	fn := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	q.mu.Unlock()

	fn()
	return true
}

// Drain runs queued continuations, including ones scheduled while draining,
// until the queue is empty. It returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for q.RunOne() {
		n++
	}
	return n
}

// Run drives the queue until done is closed or ctx is done, blocking while
// the queue is empty.
func (q *Queue) Run(ctx context.Context, done <-chan struct{}) error {
	for {
		q.Drain()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-q.signal:
		}
	}
}
