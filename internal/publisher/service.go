// Package publisher relays blockchain events onto a publish/subscribe
// transport as JSON wire frames.
//
// Events delivered by a chainevent.Source are buffered in a queue by the
// subscription callbacks and consumed by a single processing loop, which maps
// each event to its wire messages and hands the encoded frames to a Transport.
// Delivery is best effort: events are dropped when the queue overflows and
// frames are dropped when the transport is overloaded.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/chainpub/internal/chainevent"
	"github.com/gabapcia/chainpub/internal/network"
	"github.com/gabapcia/chainpub/internal/pkg/logger"
	"github.com/gabapcia/chainpub/internal/pkg/x/queue"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// State is the lifecycle phase of the processing loop.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Transport emits encoded frames to subscribers.
type Transport interface {
	// Bind opens the underlying socket.
	Bind(ctx context.Context) error

	// Emit hands a frame to the transport without blocking. It reports false
	// when the frame was dropped.
	Emit(frame string) bool

	// Close releases the socket. Frames not yet flushed may be lost.
	Close() error
}

// NetworkResolver maps configured chain codes to network descriptors.
type NetworkResolver interface {
	Resolve(ctx context.Context, codes []string) ([]network.Network, error)
}

// Service is the publisher lifecycle.
type Service interface {
	// Start resolves the configured networks, binds the transport, subscribes
	// to the event source and launches the processing loop.
	//
	// Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) error

	// Close unsubscribes from the event source, waits for the event being
	// processed to be fully emitted and closes the transport. Queued events
	// that were not processed yet are discarded. It is safe to call Close even
	// if the service was never started.
	Close()

	// State reports the current phase of the processing loop.
	State() State
}

// closeFunc stops the processing loop and releases its resources.
type closeFunc func()

type config struct {
	queueCapacity  int
	overflowPolicy queue.OverflowPolicy
	clock          func() time.Time
}

// Option configures the publisher service.
type Option func(*config)

// WithQueueCapacity bounds the number of buffered events. Zero means unbounded.
// Default: 100000.
func WithQueueCapacity(n int) Option {
	return func(c *config) {
		c.queueCapacity = n
	}
}

// WithOverflowPolicy selects which event is dropped when the queue is full.
// Default: queue.DropNewest.
func WithOverflowPolicy(p queue.OverflowPolicy) Option {
	return func(c *config) {
		c.overflowPolicy = p
	}
}

// WithClock overrides the source of the txn_time of transaction messages.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool
	closeFunc closeFunc

	state atomic.Int32

	cfg       config
	chains    []string
	resolver  NetworkResolver
	source    chainevent.Source
	transport Transport
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	resolved, err := s.resolver.Resolve(ctx, s.chains)
	if err != nil {
		return err
	}

	var (
		networks = make(map[string]network.Network, len(resolved))
		codes    = make([]string, 0, len(resolved))
	)
	for _, n := range resolved {
		networks[strings.ToUpper(n.Code)] = n
		codes = append(codes, n.Code)
	}

	if err := s.transport.Bind(ctx); err != nil {
		return fmt.Errorf("bind transport: %w", err)
	}

	q := queue.New(
		queue.WithCapacity[chainevent.Event](s.cfg.queueCapacity),
		queue.WithOverflowPolicy[chainevent.Event](s.cfg.overflowPolicy),
		queue.WithDropHandler(func(evt chainevent.Event) {
			queueDropped.WithLabelValues(evt.Kind().String()).Inc()
			logger.Debug(ctx, "event dropped by queue",
				"event.kind", evt.Kind(),
				"network", evt.NetworkCode(),
			)
		}),
	)

	subs, err := s.subscribe(q)
	if err != nil {
		q.Close()
		return errors.Join(fmt.Errorf("subscribe to events: %w", err), s.transport.Close())
	}

	// the loop outlives the Start call; only Close stops it
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.processEvents(ctx, q, networks)
	}()

	s.setState(StateRunning)

	s.closeFunc = func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}

		cancel()
		s.setState(StateDraining)
		q.Close()
		wg.Wait()

		if err := s.transport.Close(); err != nil {
			logger.Error(ctx, "failed to close transport", "error", err)
		}

		queueDepth.Set(0)
		s.setState(StateStopped)
	}
	s.isStarted = true

	logger.Info(ctx, "publisher started",
		"chains", codes,
		"queue.capacity", s.cfg.queueCapacity,
		"queue.overflow", s.cfg.overflowPolicy,
	)
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

// State implements Service.
func (s *service) State() State {
	return State(s.state.Load())
}

func (s *service) setState(state State) {
	s.state.Store(int32(state))
}

// New creates a publisher relaying events from source to transport for the
// networks resolved from chains.
func New(source chainevent.Source, transport Transport, resolver NetworkResolver, chains []string, opts ...Option) *service {
	cfg := config{
		queueCapacity:  100_000,
		overflowPolicy: queue.DropNewest,
		clock:          time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:       cfg,
		chains:    chains,
		resolver:  resolver,
		source:    source,
		transport: transport,
	}
}
