package zmq

import (
	"context"
	"errors"

	"github.com/go-zeromq/zmq4"
)

// Subscriber is a SUB socket that receives frames from a Publisher.
type Subscriber struct {
	sock zmq4.Socket
}

// NewSubscriber creates a subscriber whose socket is released when ctx is done
// or Close is called.
func NewSubscriber(ctx context.Context) *Subscriber {
	return &Subscriber{sock: zmq4.NewSub(ctx)}
}

// Dial connects to endpoint and subscribes to every frame starting with one of
// prefixes. Without prefixes every frame is received.
func (s *Subscriber) Dial(endpoint string, prefixes ...string) error {
	if err := s.sock.Dial(endpoint); err != nil {
		return err
	}

	if len(prefixes) == 0 {
		prefixes = []string{""}
	}

	for _, prefix := range prefixes {
		if err := s.sock.SetOption(zmq4.OptionSubscribe, prefix); err != nil {
			return err
		}
	}

	return nil
}

// Recv blocks until the next frame arrives.
func (s *Subscriber) Recv() (string, error) {
	msg, err := s.sock.Recv()
	if err != nil {
		return "", err
	}

	if len(msg.Frames) == 0 {
		return "", errors.New("empty message")
	}

	return string(msg.Frames[0]), nil
}

// Close releases the socket.
func (s *Subscriber) Close() error {
	return s.sock.Close()
}
