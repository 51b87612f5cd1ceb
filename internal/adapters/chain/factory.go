package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/safevoice-org/voicebridge/internal/config"
)

// Client is a per-chain handle: a connected eth client plus the signing key
// when one is configured. Key is nil for read-only operation.
type Client struct {
	Chain   *config.Chain
	Eth     *ethclient.Client
	Key     *ecdsa.PrivateKey
	Account common.Address
}

// Factory resolves chain ids to connected clients, cached per chain id so a
// transport is established once per chain.
type Factory struct {
	resolver *config.ChainResolver
	cfg      *config.RuntimeConfig
	log      *slog.Logger

	mu      sync.Mutex
	clients map[uint64]*Client
}

// NewFactory creates a client factory over the configured chain set.
func NewFactory(cfg *config.RuntimeConfig, resolver *config.ChainResolver, log *slog.Logger) *Factory {
	return &Factory{
		resolver: resolver,
		cfg:      cfg,
		log:      log.With("component", "ChainFactory"),
		clients:  make(map[uint64]*Client),
	}
}

// Client returns the cached client for chainID, dialing on first use. Ids
// outside the configured chain set fail with ErrUnsupportedChain.
func (f *Factory) Client(ctx context.Context, chainID uint64) (*Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if client, ok := f.clients[chainID]; ok {
		return client, nil
	}

	chain, err := f.resolver.ByID(chainID)
	if err != nil {
		return nil, err
	}
	if chain.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured for chain %s", chain.Name)
	}

	eth, err := f.dial(ctx, chain)
	if err != nil {
		return nil, err
	}

	client := &Client{Chain: chain, Eth: eth}

	if f.cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(f.cfg.PrivateKey, "0x"))
		if err != nil {
			eth.Close()
			return nil, fmt.Errorf("invalid signer key: %w", err)
		}
		client.Key = key
		client.Account = crypto.PubkeyToAddress(key.PublicKey)
	}

	f.clients[chainID] = client
	f.log.Debug("connected", "chain", chain.Name, "chainId", chainID, "readOnly", client.Key == nil)
	return client, nil
}

// dial connects with bounded retry and verifies the endpoint serves the
// expected chain id.
func (f *Factory) dial(ctx context.Context, chain *config.Chain) (*ethclient.Client, error) {
	var eth *ethclient.Client

	op := func() error {
		client, err := ethclient.DialContext(ctx, chain.RPCURL)
		if err != nil {
			return fmt.Errorf("failed to connect to RPC: %w", err)
		}

		networkID, err := client.ChainID(ctx)
		if err != nil {
			client.Close()
			return fmt.Errorf("failed to get chain ID: %w", err)
		}
		if networkID.Uint64() != chain.ChainID {
			client.Close()
			return backoff.Permanent(fmt.Errorf("chain ID mismatch: expected %d, got %d", chain.ChainID, networkID.Uint64()))
		}

		eth = client
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}

	return eth, nil
}

// Close releases every cached transport.
func (f *Factory) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, client := range f.clients {
		client.Eth.Close()
		delete(f.clients, id)
	}
}
