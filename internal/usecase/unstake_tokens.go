package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// UnstakeTokensParams contains parameters for releasing a stake
type UnstakeTokensParams struct {
	StakeID uint64
}

// UnstakeTokens releases a stake. The staked amount is read back from the
// chain before submission so the optimistic balance delta matches what the
// contract will release.
type UnstakeTokens struct {
	deps submitterDeps
}

// NewUnstakeTokens creates a new UnstakeTokens use case
func NewUnstakeTokens(cfg *config.RuntimeConfig, queue TransactionQueue, chain ChainGateway, events EventPublisher, notify Notifier, log *slog.Logger) *UnstakeTokens {
	return &UnstakeTokens{deps: submitterDeps{cfg: cfg, queue: queue, chain: chain, events: events, notify: notify, log: log}}
}

// Run queues an unstake and submits staking.unstake(stakeId).
func (uc *UnstakeTokens) Run(ctx context.Context, params UnstakeTokensParams) (*SubmitResult, error) {
	if err := uc.deps.ensureEnabled(); err != nil {
		return nil, err
	}
	if err := uc.deps.stakingConfigured(); err != nil {
		return nil, err
	}
	account, err := uc.deps.resolveAccount("")
	if err != nil {
		return nil, err
	}

	wei, err := uc.deps.chain.StakeAmount(ctx, account, params.StakeID)
	if err != nil {
		return nil, fmt.Errorf("failed to read stake %d: %w", params.StakeID, err)
	}
	if wei.Sign() == 0 {
		return nil, domain.ErrStakeNotFound
	}
	amount := models.FromWei(wei)

	md := models.Metadata{
		Kind:    models.TxUnstake,
		Amount:  amount,
		StakeID: params.StakeID,
	}

	opt := models.NewOptimisticUpdate()
	opt.BalanceChange = amount

	return uc.deps.submit(ctx, models.TxUnstake, md, opt, func(ctx context.Context) (string, error) {
		return uc.deps.chain.Unstake(ctx, params.StakeID)
	})
}
