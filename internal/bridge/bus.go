package bridge

import (
	evbus "github.com/asaskevich/EventBus"

	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// Bus fans bridge events out to registered listeners. It satisfies
// usecase.EventPublisher on the publishing side and exposes typed
// subscription helpers for embedders.
type Bus struct {
	inner evbus.Bus
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{inner: evbus.New()}
}

// Publish delivers args to every subscriber of topic.
func (b *Bus) Publish(topic string, args ...any) {
	b.inner.Publish(topic, args...)
}

// SubscribeTransactions registers fn for every queued-transaction lifecycle
// event. The same fn value must be passed to UnsubscribeTransactions.
func (b *Bus) SubscribeTransactions(fn func(tx *models.QueuedTransaction)) error {
	return b.inner.Subscribe(domain.TopicTransaction, fn)
}

func (b *Bus) UnsubscribeTransactions(fn func(tx *models.QueuedTransaction)) error {
	return b.inner.Unsubscribe(domain.TopicTransaction, fn)
}

// SubscribeSync registers fn for balance reconciliation events.
func (b *Bus) SubscribeSync(fn func(ev domain.SyncEvent)) error {
	return b.inner.Subscribe(domain.TopicSync, fn)
}

func (b *Bus) UnsubscribeSync(fn func(ev domain.SyncEvent)) error {
	return b.inner.Unsubscribe(domain.TopicSync, fn)
}

// WaitAsync blocks until all in-flight asynchronous handlers have returned.
func (b *Bus) WaitAsync() {
	b.inner.WaitAsync()
}
