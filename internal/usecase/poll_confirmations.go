package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// PollConfirmations checks every submitted entry for a mined receipt and
// finalizes it as confirmed or failed.
type PollConfirmations struct {
	cfg    *config.RuntimeConfig
	queue  TransactionQueue
	chain  ChainGateway
	events EventPublisher
	notify Notifier
	log    *slog.Logger
}

// NewPollConfirmations creates a new PollConfirmations use case
func NewPollConfirmations(cfg *config.RuntimeConfig, queue TransactionQueue, chain ChainGateway, events EventPublisher, notify Notifier, log *slog.Logger) *PollConfirmations {
	return &PollConfirmations{cfg: cfg, queue: queue, chain: chain, events: events, notify: notify, log: log}
}

// Run performs one poll cycle over the open entries. Receipt lookups that
// error or come back empty leave the entry untouched for the next cycle; a
// poll never fails an entry on transport problems alone.
func (uc *PollConfirmations) Run(ctx context.Context) (*PollResult, error) {
	if !uc.cfg.Enabled {
		return &PollResult{}, nil
	}

	entries, err := uc.queue.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	result := &PollResult{}
	for _, entry := range entries {
		if entry.Status != models.StatusSubmitted || entry.Hash == "" {
			continue
		}
		result.Checked++

		receipt, err := uc.chain.TransactionReceipt(ctx, entry.Hash)
		if err != nil {
			uc.log.Warn("receipt lookup failed", "id", entry.ID, "hash", entry.Hash, "error", err)
			continue
		}
		if receipt == nil {
			continue
		}

		now := time.Now().UTC()
		patch := models.TransactionPatch{Receipt: receipt, ConfirmedAt: &now}
		if receipt.Success {
			status := models.StatusConfirmed
			patch.Status = &status
			result.Confirmed++
		} else {
			status := models.StatusFailed
			msg := fmt.Sprintf("transaction reverted in block %d", receipt.BlockNumber)
			patch.Status = &status
			patch.Error = &msg
			result.Failed++
		}

		if err := uc.queue.Update(ctx, entry.ID, patch); err != nil {
			uc.log.Error("failed to finalize entry", "id", entry.ID, "error", err)
			continue
		}
		if updated, gerr := uc.queue.Get(ctx, entry.ID); gerr == nil {
			uc.events.Publish(domain.TopicTransaction, updated)
		}

		if receipt.Success {
			uc.notify.Success(fmt.Sprintf("%s confirmed", entry.Type), shortHash(entry.Hash))
			uc.log.Info("transaction confirmed", "id", entry.ID, "hash", entry.Hash, "block", receipt.BlockNumber)
		} else {
			uc.notify.Error(fmt.Sprintf("%s reverted", entry.Type), shortHash(entry.Hash))
			uc.log.Warn("transaction reverted", "id", entry.ID, "hash", entry.Hash, "block", receipt.BlockNumber)
		}
	}

	return result, nil
}
