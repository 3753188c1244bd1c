// Package relay runs the whole chainpub pipeline: the publisher consuming the
// event bus, the chain watchers feeding it and the metrics endpoint.
package relay

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/chainpub/internal/chainwatch"
	"github.com/gabapcia/chainpub/internal/handlers/metrics"
	"github.com/gabapcia/chainpub/internal/pkg/logger"
	"github.com/gabapcia/chainpub/internal/publisher"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service is the relay lifecycle.
type Service interface {
	// Start launches the publisher, then the watchers, then the metrics
	// endpoint. If a component fails to start, those already running are
	// closed and the error is returned.
	//
	// Returns ErrServiceAlreadyStarted if the relay is running.
	Start(ctx context.Context) error

	// Close stops the components in reverse order, so that no event is
	// produced while the publisher drains. It is safe to call Close even if
	// the relay was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool
	closeFunc closeFunc

	publisher publisher.Service
	watcher   chainwatch.Service
	metrics   metrics.Server // optional
}

var _ Service = (*service)(nil)

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.publisher.Start(ctx); err != nil {
		return fmt.Errorf("start publisher: %w", err)
	}

	if err := s.watcher.Start(ctx); err != nil {
		s.publisher.Close()
		return fmt.Errorf("start chainwatch: %w", err)
	}

	if s.metrics != nil {
		if err := s.metrics.Start(ctx); err != nil {
			s.watcher.Close()
			s.publisher.Close()
			return fmt.Errorf("start metrics server: %w", err)
		}
	}

	s.closeFunc = func() {
		if s.metrics != nil {
			s.metrics.Close()
		}
		s.watcher.Close()
		s.publisher.Close()

		logger.Info(ctx, "relay stopped")
	}
	s.isStarted = true

	logger.Info(ctx, "relay started")
	return nil
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// New wires the relay components. m may be nil to run without the metrics
// endpoint.
func New(p publisher.Service, w chainwatch.Service, m metrics.Server) *service {
	return &service{
		publisher: p,
		watcher:   w,
		metrics:   m,
	}
}
