package publisher

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Topic is the second segment of a frame.
type Topic string

const (
	TopicBlock       Topic = "BLOCK"
	TopicTransaction Topic = "TRANSACTION"
)

// frameSeparator delimits the header segments of a frame. The JSON payload is
// the last segment and may contain the separator.
const frameSeparator = "|"

var (
	// ErrMalformedFrame is returned by ParseFrame when the header is incomplete.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrUnknownTopic is returned by ParseFrame for topics other than BLOCK and
	// TRANSACTION.
	ErrUnknownTopic = errors.New("unknown frame topic")
)

// Frame is a decoded wire frame:
//
//	<network>|BLOCK||<json>
//	<network>|TRANSACTION|<symbol>|<json>
type Frame struct {
	Network string
	Topic   Topic
	Symbol  string
	Payload []byte
}

// String renders the frame in its wire form.
func (f Frame) String() string {
	return f.Network + frameSeparator + string(f.Topic) + frameSeparator + f.Symbol + frameSeparator + string(f.Payload)
}

// Decode unmarshals the JSON payload into v.
func (f Frame) Decode(v any) error {
	return json.Unmarshal(f.Payload, v)
}

// TopicPrefix returns the leading bytes shared by every frame of topic on
// network, suitable as a subscription filter.
func TopicPrefix(network string, topic Topic) string {
	return network + frameSeparator + string(topic) + frameSeparator
}

// EncodeBlockFrame renders a block message as a BLOCK frame.
func EncodeBlockFrame(msg ChainBlockMessage) (string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	return Frame{Network: msg.Network, Topic: TopicBlock, Payload: payload}.String(), nil
}

// EncodeTransactionFrame renders a transaction message as a TRANSACTION frame.
func EncodeTransactionFrame(msg ChainTransactionMessage) (string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	return Frame{Network: msg.Network, Topic: TopicTransaction, Symbol: msg.Symbol, Payload: payload}.String(), nil
}

// ParseFrame splits a wire frame into its header segments and payload.
func ParseFrame(s string) (Frame, error) {
	parts := strings.SplitN(s, frameSeparator, 4)
	if len(parts) != 4 {
		return Frame{}, fmt.Errorf("%w: expected 4 segments, got %d", ErrMalformedFrame, len(parts))
	}

	f := Frame{
		Network: parts[0],
		Topic:   Topic(parts[1]),
		Symbol:  parts[2],
		Payload: []byte(parts[3]),
	}

	if f.Network == "" {
		return Frame{}, fmt.Errorf("%w: empty network", ErrMalformedFrame)
	}

	switch f.Topic {
	case TopicBlock:
		if f.Symbol != "" {
			return Frame{}, fmt.Errorf("%w: block frame with symbol %q", ErrMalformedFrame, f.Symbol)
		}
	case TopicTransaction:
		if f.Symbol == "" {
			return Frame{}, fmt.Errorf("%w: transaction frame without symbol", ErrMalformedFrame)
		}
	default:
		return Frame{}, fmt.Errorf("%w: %q", ErrUnknownTopic, f.Topic)
	}

	return f, nil
}
