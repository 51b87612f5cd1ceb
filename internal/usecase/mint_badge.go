package usecase

import (
	"context"
	"log/slog"

	"cosmossdk.io/math"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// MintBadgeParams contains parameters for minting an achievement badge NFT
type MintBadgeParams struct {
	TokenID uint64
	// Recipient overrides the connected account as mint target
	Recipient string
}

// MintBadge mints one achievement badge NFT. Badges are non-fungible, so no
// ledger deltas apply.
type MintBadge struct {
	deps submitterDeps
}

// NewMintBadge creates a new MintBadge use case
func NewMintBadge(cfg *config.RuntimeConfig, queue TransactionQueue, chain ChainGateway, events EventPublisher, notify Notifier, log *slog.Logger) *MintBadge {
	return &MintBadge{deps: submitterDeps{cfg: cfg, queue: queue, chain: chain, events: events, notify: notify, log: log}}
}

// Run queues a badge mint and submits badge.mint(recipient, tokenId, 1, "").
func (uc *MintBadge) Run(ctx context.Context, params MintBadgeParams) (*SubmitResult, error) {
	if err := uc.deps.ensureEnabled(); err != nil {
		return nil, err
	}
	if err := uc.deps.badgeConfigured(); err != nil {
		return nil, err
	}
	recipient, err := uc.deps.resolveAccount(params.Recipient)
	if err != nil {
		return nil, err
	}

	md := models.Metadata{
		Kind:      models.TxMintNFT,
		Amount:    math.LegacyZeroDec(),
		TokenID:   params.TokenID,
		Recipient: recipient.Hex(),
	}

	return uc.deps.submit(ctx, models.TxMintNFT, md, nil, func(ctx context.Context) (string, error) {
		return uc.deps.chain.MintBadge(ctx, recipient, params.TokenID)
	})
}
