package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// submitterDeps groups the collaborators every operation submitter shares.
type submitterDeps struct {
	cfg    *config.RuntimeConfig
	queue  TransactionQueue
	chain  ChainGateway
	events EventPublisher
	notify Notifier
	log    *slog.Logger
}

func (d submitterDeps) ensureEnabled() error {
	if !d.cfg.Enabled {
		return domain.ErrBridgeDisabled
	}
	return nil
}

// resolveAccount returns the explicit override when given, otherwise the
// connected signing account.
func (d submitterDeps) resolveAccount(override string) (common.Address, error) {
	if override != "" {
		if !common.IsHexAddress(override) {
			return common.Address{}, fmt.Errorf("invalid address %q", override)
		}
		return common.HexToAddress(override), nil
	}
	if account, ok := d.chain.Account(); ok {
		return account, nil
	}
	return common.Address{}, domain.ErrWalletNotConnected
}

func (d submitterDeps) stakingConfigured() error {
	if d.cfg.Chain == nil || d.cfg.Chain.Contracts.Staking == "" {
		return domain.ErrStakingNotConfigured
	}
	return nil
}

func (d submitterDeps) badgeConfigured() error {
	if d.cfg.Chain == nil || d.cfg.Chain.Contracts.Badge == "" {
		return domain.ErrBadgeNotConfigured
	}
	return nil
}

func (d submitterDeps) governorConfigured() error {
	if d.cfg.Chain == nil || d.cfg.Chain.Contracts.Governor == "" {
		return domain.ErrGovernorNotConfigured
	}
	return nil
}

// submit runs the shared tail of every operation: queue the entry with its
// optimistic deltas, issue the write, and record the outcome. A rejected
// write finalizes the entry as failed rather than leaving it pending.
func (d submitterDeps) submit(
	ctx context.Context,
	txType models.TxType,
	md models.Metadata,
	opt *models.OptimisticUpdate,
	send func(context.Context) (string, error),
) (*SubmitResult, error) {
	entry, err := d.queue.Append(ctx, txType, d.cfg.ChainID, md, opt)
	if err != nil {
		return nil, err
	}
	d.events.Publish(domain.TopicTransaction, entry)

	hash, err := send(ctx)
	if err != nil {
		status := models.StatusFailed
		msg := err.Error()
		if uerr := d.queue.Update(ctx, entry.ID, models.TransactionPatch{Status: &status, Error: &msg}); uerr != nil {
			d.log.Error("failed to record submission failure", "id", entry.ID, "error", uerr)
		}
		if updated, gerr := d.queue.Get(ctx, entry.ID); gerr == nil {
			d.events.Publish(domain.TopicTransaction, updated)
		}
		d.notify.Error(fmt.Sprintf("%s failed", txType), err.Error())
		return nil, err
	}

	status := models.StatusSubmitted
	if err := d.queue.Update(ctx, entry.ID, models.TransactionPatch{Status: &status, Hash: &hash}); err != nil {
		return nil, err
	}
	if updated, gerr := d.queue.Get(ctx, entry.ID); gerr == nil {
		d.events.Publish(domain.TopicTransaction, updated)
	}

	d.notify.Success(fmt.Sprintf("%s submitted", txType), shortHash(hash))
	d.log.Info("operation submitted", "type", txType, "id", entry.ID, "hash", hash)

	return &SubmitResult{
		TransactionID: entry.ID,
		Hash:          hash,
		Optimistic:    true,
	}, nil
}

func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:8] + "…" + hash[len(hash)-4:]
}
