package usecase

import (
	"context"
	"log/slog"

	"cosmossdk.io/math"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// StakeTokensParams contains parameters for locking tokens in the staking
// contract.
type StakeTokensParams struct {
	Amount math.LegacyDec
	// LockPeriod is the lock duration in seconds
	LockPeriod uint64
}

// StakeTokens locks tokens for a fixed period in exchange for staking yield.
type StakeTokens struct {
	deps submitterDeps
}

// NewStakeTokens creates a new StakeTokens use case
func NewStakeTokens(cfg *config.RuntimeConfig, queue TransactionQueue, chain ChainGateway, events EventPublisher, notify Notifier, log *slog.Logger) *StakeTokens {
	return &StakeTokens{deps: submitterDeps{cfg: cfg, queue: queue, chain: chain, events: events, notify: notify, log: log}}
}

// Run queues a stake and submits staking.stake(amount, lockPeriod). The
// balance drops optimistically by the staked amount.
func (uc *StakeTokens) Run(ctx context.Context, params StakeTokensParams) (*SubmitResult, error) {
	if err := uc.deps.ensureEnabled(); err != nil {
		return nil, err
	}
	if err := uc.deps.stakingConfigured(); err != nil {
		return nil, err
	}
	if _, err := uc.deps.resolveAccount(""); err != nil {
		return nil, err
	}
	if params.Amount.IsNil() || !params.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	md := models.Metadata{
		Kind:       models.TxStake,
		Amount:     params.Amount,
		LockPeriod: params.LockPeriod,
	}

	opt := models.NewOptimisticUpdate()
	opt.BalanceChange = params.Amount.Neg()

	wei := models.ToWei(params.Amount)
	return uc.deps.submit(ctx, models.TxStake, md, opt, func(ctx context.Context) (string, error) {
		return uc.deps.chain.Stake(ctx, wei, params.LockPeriod)
	})
}
