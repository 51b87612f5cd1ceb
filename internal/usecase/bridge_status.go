package usecase

import (
	"context"
	"log/slog"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// BridgeStatus reports the derived state of the bridge: configuration,
// connectivity, and queue backlog.
type BridgeStatus struct {
	cfg      *config.RuntimeConfig
	queue    TransactionQueue
	chain    ChainGateway
	snapshot SnapshotStore
	log      *slog.Logger
}

// NewBridgeStatus creates a new BridgeStatus use case
func NewBridgeStatus(cfg *config.RuntimeConfig, queue TransactionQueue, chain ChainGateway, snapshot SnapshotStore, log *slog.Logger) *BridgeStatus {
	return &BridgeStatus{cfg: cfg, queue: queue, chain: chain, snapshot: snapshot, log: log}
}

func (uc *BridgeStatus) Run(ctx context.Context) (*models.BridgeStatus, error) {
	status := &models.BridgeStatus{
		Enabled: uc.cfg.Enabled,
		ChainID: uc.cfg.ChainID,
	}
	if !uc.cfg.Enabled {
		return status, nil
	}

	status.Connected = uc.chain.Connected(ctx)
	if account, ok := uc.chain.Account(); ok {
		status.Address = account.Hex()
	}

	pending, err := uc.queue.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	status.PendingCount = len(pending)

	if snap, err := uc.snapshot.GetSnapshot(ctx); err == nil && snap != nil {
		status.LastSync = snap
	}

	return status, nil
}
