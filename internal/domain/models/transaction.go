package models

import (
	"time"

	"cosmossdk.io/math"
)

// TxType tags which economic operation a queue entry represents and which
// metadata fields apply.
type TxType string

const (
	TxClaim        TxType = "claim"
	TxBurn         TxType = "burn"
	TxStake        TxType = "stake"
	TxUnstake      TxType = "unstake"
	TxClaimStaking TxType = "claimStaking"
	TxMintNFT      TxType = "mintNFT"
	TxVote         TxType = "vote"
	// TxTransfer is reserved state-space: no submitter produces it yet.
	TxTransfer TxType = "transfer"
)

// TxStatus represents the lifecycle state of a queued transaction
type TxStatus string

const (
	StatusPending   TxStatus = "pending"
	StatusSubmitted TxStatus = "submitted"
	StatusConfirmed TxStatus = "confirmed"
	StatusFailed    TxStatus = "failed"
	// StatusCancelled is reachable only from pending and has no automatic
	// producer; it exists for manual cancellation flows.
	StatusCancelled TxStatus = "cancelled"
)

// CanTransition reports whether moving from s to next is a legal lifecycle
// step. Transitions never go backwards.
func (s TxStatus) CanTransition(next TxStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusSubmitted || next == StatusFailed || next == StatusCancelled
	case StatusSubmitted:
		return next == StatusConfirmed || next == StatusFailed
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible.
func (s TxStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed || s == StatusCancelled
}

// Metadata holds the operation-specific parameters of a queue entry. Kind
// must always equal the owning transaction's Type. Amounts are tracked in the
// human-readable token unit, not fixed-point wei.
type Metadata struct {
	Kind       TxType         `json:"kind"`
	Amount     math.LegacyDec `json:"amount"`
	Recipient  string         `json:"recipient,omitempty"`
	Sender     string         `json:"sender,omitempty"`
	LockPeriod uint64         `json:"lockPeriod,omitempty"` // seconds
	StakeID    uint64         `json:"stakeId,omitempty"`
	TokenID    uint64         `json:"tokenId,omitempty"`
	ProposalID uint64         `json:"proposalId,omitempty"`
	Support    uint8          `json:"support,omitempty"`
	Reason     string         `json:"reason,omitempty"`
}

// OptimisticUpdate is the set of signed local-ledger deltas applied the moment
// an operation is queued, before chain confirmation. All values are in the
// human-readable unit.
type OptimisticUpdate struct {
	BalanceChange math.LegacyDec `json:"balanceChange"`
	PendingChange math.LegacyDec `json:"pendingChange"`
	SpentChange   math.LegacyDec `json:"spentChange"`
	ClaimedChange math.LegacyDec `json:"claimedChange"`
}

// NewOptimisticUpdate returns an update with all deltas at zero.
func NewOptimisticUpdate() *OptimisticUpdate {
	return &OptimisticUpdate{
		BalanceChange: math.LegacyZeroDec(),
		PendingChange: math.LegacyZeroDec(),
		SpentChange:   math.LegacyZeroDec(),
		ClaimedChange: math.LegacyZeroDec(),
	}
}

// Receipt is the chain-provided confirmation record for a submitted
// transaction.
type Receipt struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
	Success     bool   `json:"success"`
}

// QueuedTransaction is one tracked attempt at an on-chain operation.
type QueuedTransaction struct {
	ID          string            `json:"id"`
	Type        TxType            `json:"type"`
	Status      TxStatus          `json:"status"`
	ChainID     uint64            `json:"chainId"`
	Hash        string            `json:"hash,omitempty"`
	Receipt     *Receipt          `json:"receipt,omitempty"`
	Error       string            `json:"error,omitempty"`
	Metadata    Metadata          `json:"metadata"`
	Optimistic  *OptimisticUpdate `json:"optimisticUpdate,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	ConfirmedAt *time.Time        `json:"confirmationTimestamp,omitempty"`
}

// Open reports whether the entry still awaits a final outcome.
func (t *QueuedTransaction) Open() bool {
	return t.Status == StatusPending || t.Status == StatusSubmitted
}

// TransactionPatch carries the fields an Update call may merge into an
// existing entry. Nil fields are left untouched.
type TransactionPatch struct {
	Status      *TxStatus
	Hash        *string
	Receipt     *Receipt
	Error       *string
	ConfirmedAt *time.Time
}
