package usecase

import (
	"context"
	"log/slog"

	"cosmossdk.io/math"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// ClaimRewardsParams contains parameters for claiming earned rewards
type ClaimRewardsParams struct {
	Amount math.LegacyDec
	// Recipient overrides the connected account as mint target
	Recipient string
}

// ClaimRewards converts earned in-app rewards into minted tokens.
type ClaimRewards struct {
	deps submitterDeps
}

// NewClaimRewards creates a new ClaimRewards use case
func NewClaimRewards(cfg *config.RuntimeConfig, queue TransactionQueue, chain ChainGateway, events EventPublisher, notify Notifier, log *slog.Logger) *ClaimRewards {
	return &ClaimRewards{deps: submitterDeps{cfg: cfg, queue: queue, chain: chain, events: events, notify: notify, log: log}}
}

// Run queues a claim and submits token.mint(recipient, amount). The pending
// reward balance drops and the claimed total rises optimistically.
func (uc *ClaimRewards) Run(ctx context.Context, params ClaimRewardsParams) (*SubmitResult, error) {
	if err := uc.deps.ensureEnabled(); err != nil {
		return nil, err
	}
	recipient, err := uc.deps.resolveAccount(params.Recipient)
	if err != nil {
		return nil, err
	}
	if params.Amount.IsNil() || !params.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	md := models.Metadata{
		Kind:      models.TxClaim,
		Amount:    params.Amount,
		Recipient: recipient.Hex(),
	}

	opt := models.NewOptimisticUpdate()
	opt.PendingChange = params.Amount.Neg()
	opt.ClaimedChange = params.Amount

	wei := models.ToWei(params.Amount)
	return uc.deps.submit(ctx, models.TxClaim, md, opt, func(ctx context.Context) (string, error) {
		return uc.deps.chain.MintRewards(ctx, recipient, wei)
	})
}
