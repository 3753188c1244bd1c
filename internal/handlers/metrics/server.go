// Package metrics serves the Prometheus metrics and a health probe over HTTP.
package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gabapcia/chainpub/internal/pkg/logger"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Server is the metrics endpoint lifecycle.
type Server interface {
	// Start listens on the configured address and serves in the background.
	Start(ctx context.Context) error

	// Close stops serving. It is safe to call Close even if the server was
	// never started.
	Close()
}

// HealthCheck reports nil when the relay is healthy.
type HealthCheck func() error

type config struct {
	healthCheck     HealthCheck
	shutdownTimeout time.Duration
}

// Option configures the server.
type Option func(*config)

// WithHealthCheck sets the check behind /health. Default: always healthy.
func WithHealthCheck(check HealthCheck) Option {
	return func(c *config) {
		c.healthCheck = check
	}
}

// WithShutdownTimeout bounds how long Close waits for in-flight requests.
// Default: 5s.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		c.shutdownTimeout = d
	}
}

type server struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()
	listener  net.Listener

	addr string
	cfg  config
}

var _ Server = (*server)(nil)

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := s.cfg.healthCheck(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"status": "unhealthy", "error": err.Error()})
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// Start implements Server.
func (s *server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "metrics server stopped", "error", err)
		}
	}()

	s.listener = ln
	s.closeFunc = func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "metrics server shutdown", "error", err)
		}
		<-done
	}
	s.isStarted = true

	logger.Info(ctx, "metrics server listening", "metrics.address", ln.Addr().String())
	return nil
}

// Close implements Server.
func (s *server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.listener = nil
	s.isStarted = false
}

// Addr returns the address the server listens on, or nil when stopped.
func (s *server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// New creates a server for addr (e.g., ":9100").
func New(addr string, opts ...Option) *server {
	cfg := config{
		healthCheck:     func() error { return nil },
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &server{
		addr: addr,
		cfg:  cfg,
	}
}
