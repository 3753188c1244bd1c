// Package eventbus provides an in-process publish/subscribe bus for chain
// events. It connects the producers (chainwatch) to the consumers (publisher).
package eventbus

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/chainpub/internal/chainevent"
)

// ErrBusClosed is returned when publishing or subscribing on a closed bus.
var ErrBusClosed = errors.New("event bus closed")

// topic holds the handlers of one event type.
type topic[T any] struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[uint64]func(T)
}

func newTopic[T any]() *topic[T] {
	return &topic[T]{handlers: make(map[uint64]func(T))}
}

func (t *topic[T]) subscribe(handler func(T)) chainevent.Subscription {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.handlers[id] = handler
	t.mu.Unlock()

	var once sync.Once
	return chainevent.SubscriptionFunc(func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.handlers, id)
			t.mu.Unlock()
		})
	})
}

// publish calls every handler on the caller's goroutine. Handlers are invoked
// outside of the lock so they may unsubscribe.
func (t *topic[T]) publish(evt T) {
	t.mu.RLock()
	handlers := make([]func(T), 0, len(t.handlers))
	for _, h := range t.handlers {
		handlers = append(handlers, h)
	}
	t.mu.RUnlock()

	for _, h := range handlers {
		h(evt)
	}
}

func (t *topic[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.handlers)
}

// Bus delivers events synchronously to every subscriber. Subscribers are
// expected to hand events off without blocking.
type Bus struct {
	mu     sync.RWMutex
	closed bool

	blocks       *topic[chainevent.BlockEvent]
	transactions *topic[chainevent.TransactionEvent]
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{
		blocks:       newTopic[chainevent.BlockEvent](),
		transactions: newTopic[chainevent.TransactionEvent](),
	}
}

// SubscribeBlocks implements chainevent.Source.
func (b *Bus) SubscribeBlocks(handler func(chainevent.BlockEvent)) (chainevent.Subscription, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	return b.blocks.subscribe(handler), nil
}

// SubscribeTransactions implements chainevent.Source.
func (b *Bus) SubscribeTransactions(handler func(chainevent.TransactionEvent)) (chainevent.Subscription, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	return b.transactions.subscribe(handler), nil
}

// PublishBlock delivers evt to every block subscriber.
func (b *Bus) PublishBlock(_ context.Context, evt chainevent.BlockEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	b.blocks.publish(evt)
	return nil
}

// PublishTransaction delivers evt to every transaction subscriber.
func (b *Bus) PublishTransaction(_ context.Context, evt chainevent.TransactionEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	b.transactions.publish(evt)
	return nil
}

// Subscribers returns the number of block and transaction subscribers.
func (b *Bus) Subscribers() (blocks, transactions int) {
	return b.blocks.len(), b.transactions.len()
}

// Close rejects further publications and subscriptions. Existing
// subscriptions may still be released.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
}

var _ chainevent.Source = (*Bus)(nil)
