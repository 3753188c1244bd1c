// Package queue provides a multiple-producer, single-consumer FIFO queue with
// a non-blocking producer side and a context-aware consumer side.
//
// Producers call TryEnqueue, which never blocks: when the queue is bounded and
// full, the configured OverflowPolicy decides which element is discarded. The
// consumer calls Wait to suspend until at least one element is available, then
// drains with TryDequeue.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Wait once the queue has been closed and drained.
var ErrClosed = errors.New("queue closed")

// ErrInvalidOverflowPolicy is returned by ParseOverflowPolicy for unknown names.
var ErrInvalidOverflowPolicy = errors.New("invalid overflow policy")

// OverflowPolicy selects which element is discarded when a bounded queue is full.
type OverflowPolicy string

const (
	// DropNewest rejects the element being enqueued.
	DropNewest OverflowPolicy = "drop_newest"

	// DropOldest evicts the element at the head of the queue to make room.
	DropOldest OverflowPolicy = "drop_oldest"
)

// ParseOverflowPolicy converts a configuration string into an OverflowPolicy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(s); p {
	case DropNewest, DropOldest:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOverflowPolicy, s)
	}
}

// Queue is a FIFO buffer safe for concurrent producers and a single consumer.
// A capacity of zero means the queue is unbounded.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool

	capacity int
	policy   OverflowPolicy
	onDrop   func(T)

	notify   chan struct{} // signalled (non-blocking) on every successful enqueue
	closedCh chan struct{} // closed by Close

	dropped atomic.Uint64
}

type config[T any] struct {
	capacity int
	policy   OverflowPolicy
	onDrop   func(T)
}

// Option configures a Queue.
type Option[T any] func(*config[T])

// WithCapacity bounds the queue to n elements. Zero (the default) means unbounded.
func WithCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.capacity = max(n, 0)
	}
}

// WithOverflowPolicy selects the policy applied when a bounded queue is full.
// Default: DropNewest.
func WithOverflowPolicy[T any](p OverflowPolicy) Option[T] {
	return func(c *config[T]) {
		c.policy = p
	}
}

// WithDropHandler registers a callback invoked with every element discarded by
// the overflow policy or rejected because the queue is closed. The callback
// runs on the producer's goroutine and must not block.
func WithDropHandler[T any](f func(T)) Option[T] {
	return func(c *config[T]) {
		c.onDrop = f
	}
}

// New creates an empty queue.
func New[T any](opts ...Option[T]) *Queue[T] {
	cfg := config[T]{policy: DropNewest}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[T]{
		capacity: cfg.capacity,
		policy:   cfg.policy,
		onDrop:   cfg.onDrop,
		notify:   make(chan struct{}, 1),
		closedCh: make(chan struct{}),
	}
}

// TryEnqueue appends v without blocking. It reports whether v was accepted.
//
// With DropOldest, v is always accepted on an open queue and the head element is
// evicted instead. After Close every call returns false.
func (q *Queue[T]) TryEnqueue(v T) bool {
	q.mu.Lock()

	if q.closed {
		q.mu.Unlock()
		q.drop(v)
		return false
	}

	var (
		evicted    T
		hasEvicted bool
	)
	if q.capacity > 0 && len(q.items) >= q.capacity {
		if q.policy != DropOldest {
			q.mu.Unlock()
			q.drop(v)
			return false
		}

		evicted, hasEvicted = q.popLocked()
	}

	q.items = append(q.items, v)
	q.mu.Unlock()

	if hasEvicted {
		q.drop(evicted)
	}

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return true
}

// TryDequeue removes and returns the head element, if any.
func (q *Queue[T]) TryDequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.popLocked()
}

// Wait blocks until the queue holds at least one element, ctx is done, or the
// queue is closed and empty. It returns nil when an element is ready,
// ctx.Err() on cancellation, and ErrClosed after Close once the queue is drained.
func (q *Queue[T]) Wait(ctx context.Context) error {
	for {
		q.mu.Lock()
		var (
			n      = len(q.items)
			closed = q.closed
		)
		q.mu.Unlock()

		if n > 0 {
			return nil
		}

		if closed {
			return ErrClosed
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.closedCh:
		case <-q.notify:
		}
	}
}

// Close stops the queue from accepting new elements. Elements already queued
// can still be dequeued. Calling Close more than once is a no-op.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	close(q.closedCh)
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Dropped returns the number of elements discarded so far.
func (q *Queue[T]) Dropped() uint64 {
	return q.dropped.Load()
}

// popLocked removes the head element. q.mu must be held.
func (q *Queue[T]) popLocked() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	// Release the backing array once drained so a burst does not pin memory.
	if len(q.items) == 0 {
		q.items = nil
	}
	return v, true
}

func (q *Queue[T]) drop(v T) {
	q.dropped.Add(1)
	if q.onDrop != nil {
		q.onDrop(v)
	}
}
