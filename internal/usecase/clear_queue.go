package usecase

import (
	"context"
	"log/slog"
)

// ClearQueue drops every queued transaction record.
type ClearQueue struct {
	queue TransactionQueue
	log   *slog.Logger
}

// NewClearQueue creates a new ClearQueue use case
func NewClearQueue(queue TransactionQueue, log *slog.Logger) *ClearQueue {
	return &ClearQueue{queue: queue, log: log}
}

// Run removes all entries. Clearing an empty queue is a no-op.
func (uc *ClearQueue) Run(ctx context.Context) error {
	if err := uc.queue.Clear(ctx); err != nil {
		return err
	}
	uc.log.Info("transaction queue cleared")
	return nil
}
