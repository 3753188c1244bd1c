// Package zmq provides a ZeroMQ PUB transport with a send high-water-mark, and
// a SUB client to consume it.
//
// Frames are sent as single-part messages. The publisher never blocks its
// caller: frames are buffered up to the high-water-mark and dropped beyond it.
//
// The high-water-mark applies twice: to the local buffer feeding the socket,
// where drops are counted, and to the socket send queue itself. zmq4 never
// blocks a PUB send; once a stalled subscriber fills the socket queue it
// discards further frames without reporting them, as libzmq PUB sockets do.
package zmq

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-zeromq/zmq4"

	"github.com/gabapcia/chainpub/internal/pkg/logger"
)

const (
	// DefaultPort is the TCP port the publisher binds to when none is configured.
	DefaultPort = 2000

	// DefaultSendHighWatermark is the number of frames buffered before new
	// frames are dropped.
	DefaultSendHighWatermark = 50_000

	// DefaultFlushTimeout bounds how long Close waits for buffered frames.
	DefaultFlushTimeout = 2 * time.Second
)

var (
	// ErrAlreadyBound is returned by Bind when the publisher is bound or closed.
	ErrAlreadyBound = errors.New("publisher already bound")
)

// pubSocket is the subset of zmq4.Socket used by the publisher.
type pubSocket interface {
	Listen(endpoint string) error
	SetOption(name string, value any) error
	Send(msg zmq4.Msg) error
	Addr() net.Addr
	Close() error
}

type socketFactory func(ctx context.Context) pubSocket

func newPubSocket(ctx context.Context) pubSocket {
	return zmq4.NewPub(ctx)
}

type config struct {
	sendHWM      int
	flushTimeout time.Duration
	newSocket    socketFactory
}

// Option configures a Publisher.
type Option func(*config)

// WithSendHighWatermark sets how many frames may wait to be sent before new
// frames are dropped. Default: 50000.
func WithSendHighWatermark(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.sendHWM = n
		}
	}
}

// WithFlushTimeout bounds how long Close waits for buffered frames to be sent.
// Default: 2s.
func WithFlushTimeout(d time.Duration) Option {
	return func(c *config) {
		c.flushTimeout = d
	}
}

// Publisher is a PUB socket bound to every interface on a TCP port.
//
// Emit is safe for concurrent use.
type Publisher struct {
	port int
	cfg  config

	mu     sync.RWMutex // guards frames and closed against Emit after Close
	sock   pubSocket
	frames chan string
	done   chan struct{}
	closed bool

	sent    atomic.Uint64
	dropped atomic.Uint64
}

// NewPublisher creates an unbound publisher for port.
func NewPublisher(port int, opts ...Option) *Publisher {
	cfg := config{
		sendHWM:      DefaultSendHighWatermark,
		flushTimeout: DefaultFlushTimeout,
		newSocket:    newPubSocket,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Publisher{
		port: port,
		cfg:  cfg,
	}
}

// Endpoint returns the ZeroMQ endpoint the publisher listens on.
func (p *Publisher) Endpoint() string {
	return "tcp://*:" + strconv.Itoa(p.port)
}

// Bind opens the socket and starts the writer. The socket outlives ctx; it is
// released by Close.
func (p *Publisher) Bind(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sock != nil || p.closed {
		return ErrAlreadyBound
	}

	sock := p.cfg.newSocket(context.WithoutCancel(ctx))
	if err := sock.SetOption(zmq4.OptionHWM, p.cfg.sendHWM); err != nil {
		return errors.Join(fmt.Errorf("set send high-water-mark: %w", err), sock.Close())
	}

	if err := sock.Listen(p.Endpoint()); err != nil {
		return errors.Join(err, sock.Close())
	}

	p.sock = sock
	p.frames = make(chan string, p.cfg.sendHWM)
	p.done = make(chan struct{})

	go p.writeFrames(ctx, sock, p.frames, p.done)

	addr := p.Endpoint()
	if a := sock.Addr(); a != nil {
		addr = a.String()
	}
	logger.Info(ctx, "data publisher bound",
		"publisher.address", addr,
		"publisher.send_hwm", p.cfg.sendHWM,
	)
	return nil
}

// writeFrames sends buffered frames until frames is closed.
func (p *Publisher) writeFrames(ctx context.Context, sock pubSocket, frames <-chan string, done chan<- struct{}) {
	defer close(done)

	for frame := range frames {
		if err := sock.Send(zmq4.NewMsgString(frame)); err != nil {
			p.dropped.Add(1)
			logger.Warn(ctx, "failed to send frame", "error", err)
			continue
		}

		p.sent.Add(1)
	}
}

// Emit queues frame for sending. It never blocks and reports false when the
// frame was dropped: the high-water-mark is reached, or the publisher is not
// bound or already closed.
func (p *Publisher) Emit(frame string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed || p.frames == nil {
		p.dropped.Add(1)
		return false
	}

	select {
	case p.frames <- frame:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Close stops accepting frames, waits up to the flush timeout for buffered
// frames to be sent and closes the socket. Frames still buffered afterwards
// are lost. Calling Close more than once is a no-op.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}

	p.closed = true
	sock, done := p.sock, p.done
	if p.frames != nil {
		close(p.frames)
	}
	p.mu.Unlock()

	if sock == nil {
		return nil
	}

	timer := time.NewTimer(p.cfg.flushTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		logger.Warn(context.Background(), "publisher closed before flushing all frames",
			"publisher.pending", p.Pending(),
		)
	}

	return sock.Close()
}

// Pending returns the number of frames waiting to be sent.
func (p *Publisher) Pending() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.frames)
}

// Sent returns the number of frames written to the socket.
func (p *Publisher) Sent() uint64 {
	return p.sent.Load()
}

// Dropped returns the number of frames discarded without being sent.
func (p *Publisher) Dropped() uint64 {
	return p.dropped.Load()
}
