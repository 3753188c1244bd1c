// Package chflow provides context-aware helpers for channels and periodic
// work, so that loops stop promptly on cancellation.
package chflow

import (
	"context"
	"time"
)

// Receive waits to receive a value from ch or for ctx to be done. It reports
// false when ctx is done or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send sends data to ch unless ctx is done first. It reports whether the value
// was sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Every calls fn immediately and then once per interval until ctx is done.
// Calls never overlap: a slow fn delays the next tick.
func Every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return
		}

		fn(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
