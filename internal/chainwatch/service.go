// Package chainwatch polls blockchain nodes and raises an event for every new
// block and, optionally, every new mempool transaction.
//
// Each network is polled by its own goroutine. Blocks are raised in height
// order, starting after the last checkpoint or at the current tip when none
// exists.
package chainwatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/chainpub/internal/chainevent"
	"github.com/gabapcia/chainpub/internal/network"
	"github.com/gabapcia/chainpub/internal/pkg/logger"
	"github.com/gabapcia/chainpub/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainpub/internal/pkg/x/chflow"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// EventSink receives the events raised by the watchers.
type EventSink interface {
	PublishBlock(ctx context.Context, evt chainevent.BlockEvent) error
	PublishTransaction(ctx context.Context, evt chainevent.TransactionEvent) error
}

// Target pairs a network with the node serving it.
type Target struct {
	Network network.Network
	Client  Blockchain
}

// Service is the chainwatch lifecycle.
type Service interface {
	// Start loads the checkpoints and launches one polling goroutine per
	// target. Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) error

	// Close stops polling and waits for the goroutines to return. It is safe
	// to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type config struct {
	retry             retry.Retry
	checkpointStorage CheckpointStorage
	pollInterval      time.Duration
	mempool           bool
}

// Option configures the chainwatch service.
type Option func(*config)

// WithRetry sets the retry policy of node calls. Default: retry.New().
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCheckpointStorage sets where the latest published heights are kept.
// Default: nothing is kept and every start begins at the tip.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithPollInterval sets how often nodes are polled. Default: 10s.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithMempool enables raising a TransactionEvent for every new mempool
// transaction. Default: disabled.
func WithMempool(enabled bool) Option {
	return func(c *config) {
		c.mempool = enabled
	}
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	cfg     config
	sink    EventSink
	targets []Target
}

var _ Service = (*service)(nil)

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	watchers := make([]*watcher, 0, len(s.targets))
	for _, target := range s.targets {
		w, err := s.newWatcher(ctx, target)
		if err != nil {
			return err
		}

		watchers = append(watchers, w)
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	var wg sync.WaitGroup
	for _, w := range watchers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chflow.Every(ctx, s.cfg.pollInterval, w.poll)
		}()
	}

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}
	s.isStarted = true

	logger.Info(ctx, "chainwatch started",
		"chainwatch.networks", len(watchers),
		"chainwatch.poll_interval", s.cfg.pollInterval,
		"chainwatch.mempool", s.cfg.mempool,
	)
	return nil
}

// newWatcher prepares the poller of target, resuming after its checkpoint.
func (s *service) newWatcher(ctx context.Context, target Target) (*watcher, error) {
	next := int64(heightFromTip)

	height, err := s.cfg.checkpointStorage.LoadLatestCheckpoint(ctx, target.Network.Code)
	switch {
	case err == nil:
		next = height + 1
	case errors.Is(err, ErrNoCheckpointFound):
	default:
		return nil, fmt.Errorf("load checkpoint of %s: %w", target.Network.Code, err)
	}

	return &watcher{
		network:    target.Network,
		client:     target.Client,
		sink:       s.sink,
		checkpoint: s.cfg.checkpointStorage,
		retry:      s.cfg.retry,
		mempool:    s.cfg.mempool,
		next:       next,
	}, nil
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.isStarted = false
	s.closeFunc = nil
}

// New creates a chainwatch service raising the events of targets into sink.
func New(sink EventSink, targets []Target, opts ...Option) *service {
	cfg := config{
		retry:             retry.New(),
		checkpointStorage: nopCheckpoint{},
		pollInterval:      10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:     cfg,
		sink:    sink,
		targets: targets,
	}
}
