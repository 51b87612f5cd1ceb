package bridge

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

func TestBusTransactionFanOut(t *testing.T) {
	bus := NewBus()

	var got []*models.QueuedTransaction
	handler := func(tx *models.QueuedTransaction) {
		got = append(got, tx)
	}
	require.NoError(t, bus.SubscribeTransactions(handler))

	tx := &models.QueuedTransaction{ID: "tx-1", Type: models.TxClaim, Status: models.StatusPending}
	bus.Publish(domain.TopicTransaction, tx)
	bus.WaitAsync()

	require.Len(t, got, 1)
	assert.Equal(t, "tx-1", got[0].ID)

	// After unsubscribe nothing more arrives
	require.NoError(t, bus.UnsubscribeTransactions(handler))
	bus.Publish(domain.TopicTransaction, tx)
	bus.WaitAsync()
	assert.Len(t, got, 1)
}

func TestBusSyncFanOut(t *testing.T) {
	bus := NewBus()

	var got []domain.SyncEvent
	handler := func(ev domain.SyncEvent) {
		got = append(got, ev)
	}
	require.NoError(t, bus.SubscribeSync(handler))

	bus.Publish(domain.TopicSync, domain.SyncEvent{
		Address:   "0x1",
		Balance:   math.LegacyNewDec(10),
		Timestamp: time.Now(),
	})
	bus.WaitAsync()

	require.Len(t, got, 1)
	assert.Equal(t, "0x1", got[0].Address)
}
