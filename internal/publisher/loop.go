package publisher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/wire"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/chainpub/internal/chainevent"
	"github.com/gabapcia/chainpub/internal/network"
	"github.com/gabapcia/chainpub/internal/pkg/logger"
	"github.com/gabapcia/chainpub/internal/pkg/x/queue"
)

var (
	// ErrUnsupportedEvent is returned for event variants the loop cannot dispatch.
	ErrUnsupportedEvent = errors.New("unsupported event")

	// ErrEventPanicked wraps a panic recovered while processing an event.
	ErrEventPanicked = errors.New("event processing panicked")

	// errNetworkNotConfigured marks events for networks outside of the
	// configured set. They are skipped, not failed.
	errNetworkNotConfigured = errors.New("network not configured")
)

var tracer = otel.Tracer("github.com/gabapcia/chainpub/internal/publisher")

// outgoingFrame is an encoded frame waiting to be emitted.
type outgoingFrame struct {
	network string
	topic   Topic
	data    string
}

// processEvents consumes q until ctx is cancelled or q is closed and empty.
// Cancellation is checked before every event, so an event already being
// processed is always emitted completely.
func (s *service) processEvents(ctx context.Context, q *queue.Queue[chainevent.Event], networks map[string]network.Network) {
	for {
		if err := q.Wait(ctx); err != nil {
			return
		}

		for {
			if ctx.Err() != nil {
				return
			}

			evt, ok := q.TryDequeue()
			if !ok {
				break
			}

			queueDepth.Set(float64(q.Len()))
			s.handleEvent(ctx, evt, networks)
		}
	}
}

// handleEvent processes one event and accounts for its outcome. Failures are
// logged and never stop the loop.
func (s *service) handleEvent(ctx context.Context, evt chainevent.Event, networks map[string]network.Network) {
	if evt == nil {
		return
	}

	var (
		kind = evt.Kind().String()
		code = evt.NetworkCode()
	)

	ctx, span := tracer.Start(ctx, "publisher.ProcessEvent", trace.WithAttributes(
		attribute.String("event.kind", kind),
		attribute.String("network", code),
	))
	defer span.End()

	err := s.processEvent(ctx, evt, networks)
	switch {
	case err == nil:
		eventsProcessed.WithLabelValues(kind, code).Inc()
	case errors.Is(err, errNetworkNotConfigured):
		eventsSkipped.WithLabelValues(kind, code).Inc()
		logger.Debug(ctx, "skipping event for unconfigured network",
			"event.kind", kind,
			"network", code,
		)
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		eventsFailed.WithLabelValues(kind).Inc()
		logger.Error(ctx, "failed to process event",
			"event.kind", kind,
			"network", code,
			"error", err,
		)
	}
}

// processEvent dispatches evt by kind. A panic raised while building the
// messages is returned as ErrEventPanicked.
func (s *service) processEvent(ctx context.Context, evt chainevent.Event, networks map[string]network.Network) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrEventPanicked, r)
		}
	}()

	if _, ok := networks[strings.ToUpper(evt.NetworkCode())]; !ok {
		return errNetworkNotConfigured
	}

	switch e := evt.(type) {
	case chainevent.BlockEvent:
		return s.publishBlock(ctx, e)
	case chainevent.TransactionEvent:
		return s.publishTransaction(ctx, e)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedEvent, evt)
	}
}

// publishBlock emits the block frame followed by one frame per output of
// every transaction, in block order. Nothing is emitted if any message fails
// to build.
func (s *service) publishBlock(ctx context.Context, evt chainevent.BlockEvent) error {
	block, err := NewChainBlockMessage(evt)
	if err != nil {
		return err
	}

	data, err := EncodeBlockFrame(block)
	if err != nil {
		return fmt.Errorf("encode block %s: %w", block.BlockHash, err)
	}

	frames := []outgoingFrame{{network: block.Network, topic: TopicBlock, data: data}}

	now := s.cfg.clock()
	for _, tx := range evt.Block.Transactions {
		txFrames, err := buildTransactionFrames(evt.Network, tx, &block, now)
		if err != nil {
			return fmt.Errorf("block %s: %w", block.BlockHash, err)
		}

		frames = append(frames, txFrames...)
	}

	s.emit(frames)

	logger.Info(ctx, "block published",
		"block.network", block.Network,
		"block.hash", block.BlockHash,
		"block.height", block.BlockHeight,
		"frames", len(frames),
	)
	return nil
}

// publishTransaction emits one frame per output of a transaction seen outside
// of a block.
func (s *service) publishTransaction(ctx context.Context, evt chainevent.TransactionEvent) error {
	frames, err := buildTransactionFrames(evt.Network, evt.Transaction, nil, s.cfg.clock())
	if err != nil {
		return err
	}

	s.emit(frames)

	logger.Debug(ctx, "transaction published",
		"transaction.network", evt.Network.WireName(),
		"transaction.hash", evt.Transaction.TxHash().String(),
		"frames", len(frames),
	)
	return nil
}

func buildTransactionFrames(n network.Network, tx *wire.MsgTx, block *ChainBlockMessage, now time.Time) ([]outgoingFrame, error) {
	msgs, err := NewChainTransactionMessages(n, tx, block, now)
	if err != nil {
		return nil, err
	}

	frames := make([]outgoingFrame, 0, len(msgs))
	for _, msg := range msgs {
		data, err := EncodeTransactionFrame(msg)
		if err != nil {
			return nil, fmt.Errorf("encode transfer %s: %w", msg.TransferID, err)
		}

		frames = append(frames, outgoingFrame{network: msg.Network, topic: TopicTransaction, data: data})
	}

	return frames, nil
}

// emit hands frames to the transport in order.
func (s *service) emit(frames []outgoingFrame) {
	for _, f := range frames {
		if !s.transport.Emit(f.data) {
			framesDropped.Inc()
			continue
		}

		framesEmitted.WithLabelValues(string(f.topic), f.network).Inc()
	}
}
