package publisher

import (
	"github.com/gabapcia/chainpub/internal/chainevent"
	"github.com/gabapcia/chainpub/internal/pkg/x/queue"
)

// subscribe registers q on the event source for both event kinds. Callbacks
// only enqueue and never block; rejected events are accounted by the queue's
// drop handler. If a registration fails, those already made are released.
func (s *service) subscribe(q *queue.Queue[chainevent.Event]) ([]chainevent.Subscription, error) {
	blocks, err := s.source.SubscribeBlocks(func(evt chainevent.BlockEvent) {
		q.TryEnqueue(evt)
		queueDepth.Set(float64(q.Len()))
	})
	if err != nil {
		return nil, err
	}

	txs, err := s.source.SubscribeTransactions(func(evt chainevent.TransactionEvent) {
		q.TryEnqueue(evt)
		queueDepth.Set(float64(q.Len()))
	})
	if err != nil {
		blocks.Unsubscribe()
		return nil, err
	}

	return []chainevent.Subscription{blocks, txs}, nil
}
