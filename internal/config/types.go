package config

import (
	"time"
)

// Contracts holds the per-chain contract addresses the bridge talks to.
// Empty addresses mean the corresponding operation is not available on that
// chain.
type Contracts struct {
	Token    string `toml:"token" json:"token"`
	Staking  string `toml:"staking" json:"staking"`
	Vesting  string `toml:"vesting" json:"vesting"`
	Badge    string `toml:"badge" json:"badge"`
	Governor string `toml:"governor" json:"governor"`
}

// Chain describes one supported chain: its id, transport, and contract set.
type Chain struct {
	Name        string    `toml:"name" json:"name"`
	ChainID     uint64    `toml:"chain_id" json:"chainId"`
	RPCURL      string    `toml:"rpc_url" json:"rpcUrl"`
	ExplorerURL string    `toml:"explorer_url" json:"explorerUrl,omitempty"`
	Contracts   Contracts `toml:"contracts" json:"contracts"`
}

// RuntimeConfig is the fully resolved configuration a command or embedding
// application runs with.
type RuntimeConfig struct {
	ProjectRoot string
	DataDir     string

	// Bridge settings
	Enabled      bool
	ChainID      uint64
	PollInterval time.Duration
	PrivateKey   string // hex-encoded signer key; empty means read-only

	// Resolved chain for ChainID
	Chain *Chain

	// All configured chains, by name
	Chains map[string]*Chain

	// CLI behavior
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration
}
