// Package async provides single-assignment futures, a cooperative
// round-robin executor for polling tasks, and combinators to compose futures
// without blocking a goroutine per wait.
package async

import (
	"context"
	"errors"
	"sync"
)

// ErrRejected is the default error of a future rejected with a nil error.
var ErrRejected = errors.New("future was rejected")

// Future is a read handle on a value that becomes available at most once.
// Futures are created through a Promise or the Ready and Failed helpers.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Ready reports whether the future has been resolved or rejected.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Get blocks until the future completes or the context is cancelled.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// result returns the outcome of a completed future without blocking. Only
// call after Ready reports true.
func (f *Future[T]) result() (T, error) {
	return f.value, f.err
}

// Promise is the write side of a Future. Complete it exactly once with
// Resolve or Reject; later completions are no-ops.
type Promise[T any] struct {
	f    *Future[T]
	once sync.Once
}

// NewPromise creates an incomplete promise/future pair.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{
		f: &Future[T]{done: make(chan struct{})},
	}
}

// Future returns the read handle.
func (p *Promise[T]) Future() *Future[T] { return p.f }

// Resolve completes the future with a value.
func (p *Promise[T]) Resolve(value T) {
	p.once.Do(func() {
		p.f.value = value
		close(p.f.done)
	})
}

// Reject completes the future with an error. A nil err is replaced with
// ErrRejected so the future never reports success spuriously.
func (p *Promise[T]) Reject(err error) {
	p.once.Do(func() {
		if err == nil {
			err = ErrRejected
		}
		p.f.err = err
		close(p.f.done)
	})
}

// Ready returns a future that already holds value. Useful in tests and as a
// chain seed.
func Ready[T any](value T) *Future[T] {
	p := NewPromise[T]()
	p.Resolve(value)
	return p.Future()
}

// Failed returns a future that already holds err.
func Failed[T any](err error) *Future[T] {
	p := NewPromise[T]()
	p.Reject(err)
	return p.Future()
}
