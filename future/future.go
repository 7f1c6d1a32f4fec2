// Package future provides a minimal deferred computation used by the
// non-blocking execution mode.
//
// A Future completes exactly once with a value or an error. Work is attached
// as continuations with Then; each continuation is handed to a Scheduler
// once its predecessor has completed, so the steps of one chain run strictly
// in order. The package owns no goroutines of its own: the Scheduler decides
// where continuations run.
//
//	f := future.Start(ctx, future.Goroutines, fetch)
//	g := future.Then(ctx, future.Goroutines, f, parse)
//	v, err := g.Await(ctx)
package future

import (
	"context"
	"errors"
	"sync"
)

// ErrPending is returned by Result while a future has not completed.
var ErrPending = errors.New("future: pending")

// Future is the eventual result of an asynchronous computation.
type Future[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	completed bool
	value     T
	err       error
	callbacks []func()
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future already completed with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.complete(v, nil)
	return f
}

// Failed returns a future already completed with err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}

// Start schedules fn on s and returns a future for its result. If ctx is done
// before fn gets to run, fn is skipped and the future fails with ctx.Err().
func Start[T any](ctx context.Context, s Scheduler, fn func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	s.Schedule(func() {
		if err := ctx.Err(); err != nil {
			var zero T
			f.complete(zero, err)
			return
		}
		f.complete(fn(ctx))
	})
	return f
}

// Then returns a future for fn applied to the value of f. fn runs on s after f
// succeeded; an error from f is propagated without calling fn.
func Then[T, U any](ctx context.Context, s Scheduler, f *Future[T], fn func(context.Context, T) (U, error)) *Future[U] {
	return ThenRelease(ctx, s, f, fn, nil)
}

// ThenRelease is Then with a release hook. When ctx is done by the time the
// continuation would run, fn is skipped and release receives the value of f
// so it can free what it holds.
func ThenRelease[T, U any](ctx context.Context, s Scheduler, f *Future[T], fn func(context.Context, T) (U, error), release func(T)) *Future[U] {
	next := newFuture[U]()
	f.onComplete(func() {
		var zero U
		if f.err != nil {
			next.complete(zero, f.err)
			return
		}
		s.Schedule(func() {
			if err := ctx.Err(); err != nil {
				if release != nil {
					release(f.value)
				}
				next.complete(zero, err)
				return
			}
			next.complete(fn(ctx, f.value))
		})
	})
	return next
}

// Done returns a channel that is closed once the future has completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result returns the outcome without waiting. It fails with ErrPending while
// the future has not completed.
func (f *Future[T]) Result() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.completed {
		var zero T
		return zero, ErrPending
	}
	return f.value, f.err
}

// Await blocks until the future completes or ctx is done. Abandoning the wait
// does not stop the computation; cancel the context given to Start/Then for that.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnComplete registers fn to observe the outcome. fn runs inline on the
// goroutine that completes f, before Done is closed, or immediately if f has
// already completed. It must not block.
func (f *Future[T]) OnComplete(fn func(T, error)) {
	f.onComplete(func() { fn(f.value, f.err) })
}

func (f *Future[T]) complete(v T, err error) {
	f.mu.Lock()
	if f.completed {
		f.mu.Unlock()
		return
	}
	f.value, f.err, f.completed = v, err, true
	callbacks := f.callbacks
	f.callbacks = nil
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
	close(f.done)
}

// onComplete runs cb once f has completed; immediately if it already has.
func (f *Future[T]) onComplete(cb func()) {
	f.mu.Lock()
	if f.completed {
		f.mu.Unlock()
		cb()
		return
	}
	f.callbacks = append(f.callbacks, cb)
	f.mu.Unlock()
}
