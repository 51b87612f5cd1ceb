package usecase

import (
	"context"
	"log/slog"

	"cosmossdk.io/math"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// BurnTokensParams contains parameters for spending tokens
type BurnTokensParams struct {
	Amount math.LegacyDec
	// Sender overrides the connected account as burn source
	Sender string
}

// BurnTokens spends tokens by burning them from the holder's balance.
type BurnTokens struct {
	deps submitterDeps
}

// NewBurnTokens creates a new BurnTokens use case
func NewBurnTokens(cfg *config.RuntimeConfig, queue TransactionQueue, chain ChainGateway, events EventPublisher, notify Notifier, log *slog.Logger) *BurnTokens {
	return &BurnTokens{deps: submitterDeps{cfg: cfg, queue: queue, chain: chain, events: events, notify: notify, log: log}}
}

// Run queues a burn and submits token.burnFrom(sender, amount). The balance
// drops and the spent total rises optimistically.
func (uc *BurnTokens) Run(ctx context.Context, params BurnTokensParams) (*SubmitResult, error) {
	if err := uc.deps.ensureEnabled(); err != nil {
		return nil, err
	}
	sender, err := uc.deps.resolveAccount(params.Sender)
	if err != nil {
		return nil, err
	}
	if params.Amount.IsNil() || !params.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	md := models.Metadata{
		Kind:   models.TxBurn,
		Amount: params.Amount,
		Sender: sender.Hex(),
	}

	opt := models.NewOptimisticUpdate()
	opt.BalanceChange = params.Amount.Neg()
	opt.SpentChange = params.Amount

	wei := models.ToWei(params.Amount)
	return uc.deps.submit(ctx, models.TxBurn, md, opt, func(ctx context.Context) (string, error) {
		return uc.deps.chain.BurnFrom(ctx, sender, wei)
	})
}
