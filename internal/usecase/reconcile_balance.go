package usecase

import (
	"context"
	"log/slog"
	"time"

	"cosmossdk.io/math"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// ReconcileBalanceParams carries an optional authoritative balance. When nil,
// the balance is read from the token contract.
type ReconcileBalanceParams struct {
	Balance *math.LegacyDec
}

// ReconcileBalance replaces optimistic balance state with the on-chain truth
// and persists the resulting snapshot.
type ReconcileBalance struct {
	cfg      *config.RuntimeConfig
	chain    ChainGateway
	snapshot SnapshotStore
	events   EventPublisher
	log      *slog.Logger
}

// NewReconcileBalance creates a new ReconcileBalance use case
func NewReconcileBalance(cfg *config.RuntimeConfig, chain ChainGateway, snapshot SnapshotStore, events EventPublisher, log *slog.Logger) *ReconcileBalance {
	return &ReconcileBalance{cfg: cfg, chain: chain, snapshot: snapshot, events: events, log: log}
}

// Run fetches (or accepts) the authoritative balance for the connected
// account, stores a snapshot, and announces it. It is a silent no-op when the
// bridge is disabled or no wallet is connected.
func (uc *ReconcileBalance) Run(ctx context.Context, params ReconcileBalanceParams) (*models.BalanceSnapshot, error) {
	if !uc.cfg.Enabled {
		return nil, nil
	}
	account, ok := uc.chain.Account()
	if !ok {
		return nil, nil
	}

	var balance math.LegacyDec
	if params.Balance != nil {
		balance = *params.Balance
	} else {
		var err error
		balance, err = uc.chain.TokenBalance(ctx, account)
		if err != nil {
			return nil, err
		}
	}

	snap := &models.BalanceSnapshot{
		Address:   account.Hex(),
		Balance:   balance,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.snapshot.SaveSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	uc.events.Publish(domain.TopicSync, domain.SyncEvent{
		Address:   snap.Address,
		Balance:   snap.Balance,
		Timestamp: snap.Timestamp,
	})
	uc.log.Debug("balance reconciled", "address", snap.Address, "balance", balance.String())

	return snap, nil
}
