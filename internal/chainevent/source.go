package chainevent

// Subscription is a registration on a Source. Unsubscribe stops further
// deliveries and may be called more than once.
type Subscription interface {
	Unsubscribe()
}

// Source delivers events to subscribers. Handlers may be invoked from any
// goroutine and must not block.
type Source interface {
	SubscribeBlocks(handler func(BlockEvent)) (Subscription, error)
	SubscribeTransactions(handler func(TransactionEvent)) (Subscription, error)
}

// SubscriptionFunc adapts a function to the Subscription interface.
type SubscriptionFunc func()

// Unsubscribe calls f.
func (f SubscriptionFunc) Unsubscribe() {
	f()
}
