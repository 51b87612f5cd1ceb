package bridge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// UseCases bundles the operations the facade exposes.
type UseCases struct {
	ClaimRewards      *usecase.ClaimRewards
	BurnTokens        *usecase.BurnTokens
	StakeTokens       *usecase.StakeTokens
	UnstakeTokens     *usecase.UnstakeTokens
	MintBadge         *usecase.MintBadge
	SubmitVote        *usecase.SubmitVote
	PollConfirmations *usecase.PollConfirmations
	ReconcileBalance  *usecase.ReconcileBalance
	BridgeStatus      *usecase.BridgeStatus
	ListQueue         *usecase.ListQueue
	ClearQueue        *usecase.ClearQueue
}

// Bridge is the embedder-facing surface of the transaction bridge. It owns the
// confirmation poller goroutine and the event bus; everything else is
// delegated to the use cases.
type Bridge struct {
	cfg *config.RuntimeConfig
	uc  UseCases
	bus *Bus
	log *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a new Bridge facade
func New(cfg *config.RuntimeConfig, uc UseCases, bus *Bus, log *slog.Logger) *Bridge {
	return &Bridge{cfg: cfg, uc: uc, bus: bus, log: log}
}

// Events returns the bus embedders subscribe on.
func (b *Bridge) Events() *Bus {
	return b.bus
}

func (b *Bridge) ClaimRewards(ctx context.Context, params usecase.ClaimRewardsParams) (*usecase.SubmitResult, error) {
	res, err := b.uc.ClaimRewards.Run(ctx, params)
	if err == nil {
		transactionsSubmitted.WithLabelValues(string(models.TxClaim)).Inc()
	}
	return res, err
}

func (b *Bridge) BurnTokens(ctx context.Context, params usecase.BurnTokensParams) (*usecase.SubmitResult, error) {
	res, err := b.uc.BurnTokens.Run(ctx, params)
	if err == nil {
		transactionsSubmitted.WithLabelValues(string(models.TxBurn)).Inc()
	}
	return res, err
}

func (b *Bridge) StakeTokens(ctx context.Context, params usecase.StakeTokensParams) (*usecase.SubmitResult, error) {
	res, err := b.uc.StakeTokens.Run(ctx, params)
	if err == nil {
		transactionsSubmitted.WithLabelValues(string(models.TxStake)).Inc()
	}
	return res, err
}

func (b *Bridge) UnstakeTokens(ctx context.Context, params usecase.UnstakeTokensParams) (*usecase.SubmitResult, error) {
	res, err := b.uc.UnstakeTokens.Run(ctx, params)
	if err == nil {
		transactionsSubmitted.WithLabelValues(string(models.TxUnstake)).Inc()
	}
	return res, err
}

func (b *Bridge) MintBadge(ctx context.Context, params usecase.MintBadgeParams) (*usecase.SubmitResult, error) {
	res, err := b.uc.MintBadge.Run(ctx, params)
	if err == nil {
		transactionsSubmitted.WithLabelValues(string(models.TxMintNFT)).Inc()
	}
	return res, err
}

func (b *Bridge) SubmitVote(ctx context.Context, params usecase.SubmitVoteParams) (*usecase.SubmitResult, error) {
	res, err := b.uc.SubmitVote.Run(ctx, params)
	if err == nil {
		transactionsSubmitted.WithLabelValues(string(models.TxVote)).Inc()
	}
	return res, err
}

func (b *Bridge) Status(ctx context.Context) (*models.BridgeStatus, error) {
	return b.uc.BridgeStatus.Run(ctx)
}

func (b *Bridge) ListTransactions(ctx context.Context, params usecase.ListQueueParams) ([]*models.QueuedTransaction, error) {
	return b.uc.ListQueue.Run(ctx, params)
}

func (b *Bridge) ClearQueue(ctx context.Context) error {
	return b.uc.ClearQueue.Run(ctx)
}

// Reconcile replaces optimistic balance state with the chain's truth.
func (b *Bridge) Reconcile(ctx context.Context, params usecase.ReconcileBalanceParams) (*models.BalanceSnapshot, error) {
	snap, err := b.uc.ReconcileBalance.Run(ctx, params)
	if err == nil && snap != nil {
		balanceReconciliations.Inc()
	}
	return snap, err
}

// PollOnce runs a single confirmation poll cycle.
func (b *Bridge) PollOnce(ctx context.Context) (*usecase.PollResult, error) {
	res, err := b.uc.PollConfirmations.Run(ctx)
	if err != nil {
		pollErrors.Inc()
		return nil, err
	}
	transactionsConfirmed.Add(float64(res.Confirmed))
	transactionsFailed.Add(float64(res.Failed))
	return res, nil
}

// StartPolling launches the confirmation poller. It is a no-op when the
// bridge is disabled or a poller is already running.
func (b *Bridge) StartPolling(ctx context.Context) {
	if !b.cfg.Enabled {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})

	interval := b.cfg.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}

	go b.pollLoop(ctx, interval)
}

func (b *Bridge) pollLoop(ctx context.Context, interval time.Duration) {
	defer close(b.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	b.log.Debug("confirmation poller started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			b.log.Debug("confirmation poller stopped")
			return
		case <-ticker.C:
			if res, err := b.PollOnce(ctx); err != nil {
				b.log.Warn("confirmation poll failed", "error", err)
			} else if res.Checked > 0 {
				b.log.Debug("confirmation poll complete",
					"checked", res.Checked, "confirmed", res.Confirmed, "failed", res.Failed)
			}
		}
	}
}

// Close stops the poller and drains in-flight event handlers.
func (b *Bridge) Close() error {
	b.mu.Lock()
	cancel, done := b.cancel, b.done
	b.cancel, b.done = nil, nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	b.bus.WaitAsync()
	return nil
}
