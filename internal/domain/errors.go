package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for bridge operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrBridgeDisabled is returned when an operation is attempted while the bridge is disabled
	ErrBridgeDisabled = errors.New("web3 bridge disabled")

	// ErrWalletNotConnected is returned when no signing account is resolvable
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrUnsupportedChain is returned when a chain id is not in the configured chain set
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrInvalidAmount is returned when an amount is zero, negative, or unparseable
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrStakingNotConfigured is returned when the staking contract address is missing
	ErrStakingNotConfigured = errors.New("staking contract not configured")

	// ErrBadgeNotConfigured is returned when the achievement NFT contract address is missing
	ErrBadgeNotConfigured = errors.New("badge contract not configured")

	// ErrGovernorNotConfigured is returned when the governor contract address is missing
	ErrGovernorNotConfigured = errors.New("governor contract not configured")

	// ErrStakeNotFound is returned when an unstake references a stake id with no active stake
	ErrStakeNotFound = errors.New("stake not found")

	// ErrInvalidTransition is returned when a status update would move backwards
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMetadataMismatch is returned when metadata kind disagrees with the entry type
	ErrMetadataMismatch = errors.New("metadata kind does not match transaction type")
)

// UnknownChainErr carries the closest configured chain names for an
// unresolvable chain reference.
type UnknownChainErr struct {
	Input       string
	Suggestions []string
}

func (e UnknownChainErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown chain: %s", e.Input)
	}
	return fmt.Sprintf("unknown chain: %s (did you mean %v?)", e.Input, e.Suggestions)
}
