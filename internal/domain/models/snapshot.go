package models

import (
	"time"

	"cosmossdk.io/math"
)

// BalanceSnapshot is the last-known on-chain balance persisted by a
// reconciliation pass.
type BalanceSnapshot struct {
	Address   string         `json:"address"`
	Balance   math.LegacyDec `json:"balance"`
	Timestamp time.Time      `json:"timestamp"`
}

// BridgeStatus is a derived snapshot of bridge state, computed on demand and
// never persisted.
type BridgeStatus struct {
	Enabled      bool             `json:"enabled"`
	Connected    bool             `json:"connected"`
	ChainID      uint64           `json:"chainId"`
	Address      string           `json:"address,omitempty"`
	PendingCount int              `json:"pendingTransactionCount"`
	LastSync     *BalanceSnapshot `json:"lastSync,omitempty"`
}
