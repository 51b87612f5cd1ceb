package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// ListQueueParams filters the queued transaction listing. Zero values match
// everything.
type ListQueueParams struct {
	Status models.TxStatus
	Type   models.TxType
	// Open restricts the listing to pending and submitted entries.
	Open bool
}

// ListQueue returns queued transactions, optionally filtered.
type ListQueue struct {
	queue TransactionQueue
	log   *slog.Logger
}

// NewListQueue creates a new ListQueue use case
func NewListQueue(queue TransactionQueue, log *slog.Logger) *ListQueue {
	return &ListQueue{queue: queue, log: log}
}

func (uc *ListQueue) Run(ctx context.Context, params ListQueueParams) ([]*models.QueuedTransaction, error) {
	entries, err := uc.queue.List(ctx)
	if err != nil {
		return nil, err
	}

	entries = lo.Filter(entries, func(tx *models.QueuedTransaction, _ int) bool {
		if params.Open && !tx.Open() {
			return false
		}
		if params.Status != "" && tx.Status != params.Status {
			return false
		}
		if params.Type != "" && tx.Type != params.Type {
			return false
		}
		return true
	})

	return entries, nil
}
