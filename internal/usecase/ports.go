package usecase

import (
	"context"
	"math/big"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// TransactionQueue is the durable outbox of every operation queued on this
// device. Append assigns ids and persists; Update merges and silently ignores
// unknown ids.
type TransactionQueue interface {
	Append(ctx context.Context, txType models.TxType, chainID uint64, md models.Metadata, opt *models.OptimisticUpdate) (*models.QueuedTransaction, error)
	Update(ctx context.Context, id string, patch models.TransactionPatch) error
	Get(ctx context.Context, id string) (*models.QueuedTransaction, error)
	List(ctx context.Context) ([]*models.QueuedTransaction, error)
	ListPending(ctx context.Context) ([]*models.QueuedTransaction, error)
	Clear(ctx context.Context) error
}

// SnapshotStore persists the last-reconciled balance snapshot.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap *models.BalanceSnapshot) error
	GetSnapshot(ctx context.Context) (*models.BalanceSnapshot, error)
}

// ChainGateway is the contract call surface consumed by the bridge. Write
// calls return the submitted transaction hash; they fail with
// domain.ErrWalletNotConnected when no signing account is available.
type ChainGateway interface {
	// Account returns the signing address, if a wallet key is configured.
	Account() (common.Address, bool)
	// Connected reports whether a transport for the active chain is reachable.
	Connected(ctx context.Context) bool

	TokenBalance(ctx context.Context, owner common.Address) (math.LegacyDec, error)
	MintRewards(ctx context.Context, recipient common.Address, wei *big.Int) (string, error)
	BurnFrom(ctx context.Context, owner common.Address, wei *big.Int) (string, error)

	Stake(ctx context.Context, wei *big.Int, lockPeriod uint64) (string, error)
	Unstake(ctx context.Context, stakeID uint64) (string, error)
	// StakeAmount reads back the staked wei for a stake id of the connected
	// account. A zero result means no active stake.
	StakeAmount(ctx context.Context, owner common.Address, stakeID uint64) (*big.Int, error)

	MintBadge(ctx context.Context, recipient common.Address, tokenID uint64) (string, error)

	CastVote(ctx context.Context, proposalID uint64, support uint8) (string, error)
	CastVoteWithReason(ctx context.Context, proposalID uint64, support uint8, reason string) (string, error)

	// TransactionReceipt returns (nil, nil) while the chain has no receipt
	// yet; errors are transport failures only.
	TransactionReceipt(ctx context.Context, hash string) (*models.Receipt, error)
}

// EventPublisher fans bridge events out to subscribed observers. Topics and
// payloads are defined in the domain package.
type EventPublisher interface {
	Publish(topic string, args ...any)
}

// Notifier is the user-facing toast surface; implementations must never
// block or fail the calling operation.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// ProgressSink receives progress updates from long-running use cases.
type ProgressSink interface {
	OnProgress(ctx context.Context, message string, spinner bool)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, string, bool) {}
func (NopProgress) Info(string)                              {}
func (NopProgress) Error(string)                             {}

// SubmitResult is returned by every operation submitter on success.
type SubmitResult struct {
	TransactionID string
	Hash          string
	Optimistic    bool
}

// PollResult summarizes one confirmation poll cycle.
type PollResult struct {
	Checked   int
	Confirmed int
	Failed    int
}
