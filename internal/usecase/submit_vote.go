package usecase

import (
	"context"
	"log/slog"

	"cosmossdk.io/math"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// SubmitVoteParams contains parameters for casting a governance vote
type SubmitVoteParams struct {
	ProposalID uint64
	// Support follows the governor convention: 0 against, 1 for, 2 abstain
	Support uint8
	// Reason, when non-empty, is recorded on-chain alongside the vote
	Reason string
}

// SubmitVote casts a governance vote, with or without an attached reason.
type SubmitVote struct {
	deps submitterDeps
}

// NewSubmitVote creates a new SubmitVote use case
func NewSubmitVote(cfg *config.RuntimeConfig, queue TransactionQueue, chain ChainGateway, events EventPublisher, notify Notifier, log *slog.Logger) *SubmitVote {
	return &SubmitVote{deps: submitterDeps{cfg: cfg, queue: queue, chain: chain, events: events, notify: notify, log: log}}
}

// Run queues a vote and submits governor.castVote or castVoteWithReason
// depending on whether a reason is given.
func (uc *SubmitVote) Run(ctx context.Context, params SubmitVoteParams) (*SubmitResult, error) {
	if err := uc.deps.ensureEnabled(); err != nil {
		return nil, err
	}
	if err := uc.deps.governorConfigured(); err != nil {
		return nil, err
	}
	if _, err := uc.deps.resolveAccount(""); err != nil {
		return nil, err
	}

	md := models.Metadata{
		Kind:       models.TxVote,
		Amount:     math.LegacyZeroDec(),
		ProposalID: params.ProposalID,
		Support:    params.Support,
		Reason:     params.Reason,
	}

	return uc.deps.submit(ctx, models.TxVote, md, nil, func(ctx context.Context) (string, error) {
		if params.Reason != "" {
			return uc.deps.chain.CastVoteWithReason(ctx, params.ProposalID, params.Support, params.Reason)
		}
		return uc.deps.chain.CastVote(ctx, params.ProposalID, params.Support)
	})
}
