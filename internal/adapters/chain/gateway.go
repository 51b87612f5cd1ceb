package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

const readTimeout = 5 * time.Second

// Gateway implements the ChainGateway port over the client factory and the
// contract ABIs. All operations target the active chain from RuntimeConfig.
type Gateway struct {
	factory *Factory
	cfg     *config.RuntimeConfig
	log     *slog.Logger
}

// NewGateway creates a new contract gateway
func NewGateway(cfg *config.RuntimeConfig, factory *Factory, log *slog.Logger) *Gateway {
	return &Gateway{
		factory: factory,
		cfg:     cfg,
		log:     log.With("component", "ChainGateway"),
	}
}

// Account returns the signing address derived from the configured key.
func (g *Gateway) Account() (common.Address, bool) {
	if g.cfg.PrivateKey == "" {
		return common.Address{}, false
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(g.cfg.PrivateKey, "0x"))
	if err != nil {
		return common.Address{}, false
	}
	return crypto.PubkeyToAddress(key.PublicKey), true
}

// Connected reports whether a client for the active chain can be acquired.
func (g *Gateway) Connected(ctx context.Context) bool {
	_, err := g.factory.Client(ctx, g.cfg.ChainID)
	return err == nil
}

func (g *Gateway) tokenAddress() (common.Address, error) {
	if g.cfg.Chain == nil || g.cfg.Chain.Contracts.Token == "" {
		return common.Address{}, fmt.Errorf("token contract not configured")
	}
	return common.HexToAddress(g.cfg.Chain.Contracts.Token), nil
}

// TokenBalance reads balanceOf and converts it to the human unit.
func (g *Gateway) TokenBalance(ctx context.Context, owner common.Address) (math.LegacyDec, error) {
	token, err := g.tokenAddress()
	if err != nil {
		return math.LegacyDec{}, err
	}

	results, err := g.read(ctx, token, &tokenABI, "balanceOf", owner)
	if err != nil {
		return math.LegacyDec{}, err
	}

	wei, ok := results[0].(*big.Int)
	if !ok {
		return math.LegacyDec{}, fmt.Errorf("unexpected balanceOf result type %T", results[0])
	}
	return models.FromWei(wei), nil
}

// MintRewards submits token.mint(recipient, amount).
func (g *Gateway) MintRewards(ctx context.Context, recipient common.Address, wei *big.Int) (string, error) {
	token, err := g.tokenAddress()
	if err != nil {
		return "", err
	}
	return g.write(ctx, token, &tokenABI, "mint", recipient, wei)
}

// BurnFrom submits token.burnFrom(owner, amount).
func (g *Gateway) BurnFrom(ctx context.Context, owner common.Address, wei *big.Int) (string, error) {
	token, err := g.tokenAddress()
	if err != nil {
		return "", err
	}
	return g.write(ctx, token, &tokenABI, "burnFrom", owner, wei)
}

// Stake submits staking.stake(amount, lockPeriod).
func (g *Gateway) Stake(ctx context.Context, wei *big.Int, lockPeriod uint64) (string, error) {
	staking := common.HexToAddress(g.cfg.Chain.Contracts.Staking)
	return g.write(ctx, staking, &stakingABI, "stake", wei, new(big.Int).SetUint64(lockPeriod))
}

// Unstake submits staking.unstake(stakeId).
func (g *Gateway) Unstake(ctx context.Context, stakeID uint64) (string, error) {
	staking := common.HexToAddress(g.cfg.Chain.Contracts.Staking)
	return g.write(ctx, staking, &stakingABI, "unstake", new(big.Int).SetUint64(stakeID))
}

// StakeAmount reads getStake and returns the staked wei, or zero when the
// stake is inactive.
func (g *Gateway) StakeAmount(ctx context.Context, owner common.Address, stakeID uint64) (*big.Int, error) {
	staking := common.HexToAddress(g.cfg.Chain.Contracts.Staking)

	results, err := g.read(ctx, staking, &stakingABI, "getStake", owner, new(big.Int).SetUint64(stakeID))
	if err != nil {
		return nil, err
	}

	amount, ok := results[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected getStake result type %T", results[0])
	}
	active, ok := results[3].(bool)
	if !ok {
		return nil, fmt.Errorf("unexpected getStake active flag type %T", results[3])
	}
	if !active {
		return big.NewInt(0), nil
	}
	return amount, nil
}

// MintBadge submits badge.mint(recipient, tokenId, 1, "").
func (g *Gateway) MintBadge(ctx context.Context, recipient common.Address, tokenID uint64) (string, error) {
	badge := common.HexToAddress(g.cfg.Chain.Contracts.Badge)
	return g.write(ctx, badge, &badgeABI, "mint", recipient, new(big.Int).SetUint64(tokenID), big.NewInt(1), []byte{})
}

// CastVote submits governor.castVote(proposalId, support).
func (g *Gateway) CastVote(ctx context.Context, proposalID uint64, support uint8) (string, error) {
	governor := common.HexToAddress(g.cfg.Chain.Contracts.Governor)
	return g.write(ctx, governor, &governorABI, "castVote", new(big.Int).SetUint64(proposalID), support)
}

// CastVoteWithReason submits governor.castVoteWithReason(proposalId, support, reason).
func (g *Gateway) CastVoteWithReason(ctx context.Context, proposalID uint64, support uint8, reason string) (string, error) {
	governor := common.HexToAddress(g.cfg.Chain.Contracts.Governor)
	return g.write(ctx, governor, &governorABI, "castVoteWithReason", new(big.Int).SetUint64(proposalID), support, reason)
}

// TransactionReceipt looks up a receipt by hash. A missing receipt is
// (nil, nil); only transport failures return an error.
func (g *Gateway) TransactionReceipt(ctx context.Context, hash string) (*models.Receipt, error) {
	client, err := g.factory.Client(ctx, g.cfg.ChainID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	receipt, err := client.Eth.TransactionReceipt(ctx, common.HexToHash(hash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) || strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
	}

	return &models.Receipt{
		TxHash:      hash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		Success:     receipt.Status == types.ReceiptStatusSuccessful,
	}, nil
}

// read executes a view call and returns the decoded outputs.
func (g *Gateway) read(ctx context.Context, contract common.Address, cabi *abi.ABI, method string, args ...any) ([]any, error) {
	client, err := g.factory.Client(ctx, g.cfg.ChainID)
	if err != nil {
		return nil, err
	}

	data, err := cabi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	output, err := client.Eth.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	results, err := cabi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	return results, nil
}

// write signs and submits a state-changing call and returns the transaction
// hash.
func (g *Gateway) write(ctx context.Context, contract common.Address, cabi *abi.ABI, method string, args ...any) (string, error) {
	client, err := g.factory.Client(ctx, g.cfg.ChainID)
	if err != nil {
		return "", err
	}
	if client.Key == nil {
		return "", domain.ErrWalletNotConnected
	}

	data, err := cabi.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	nonce, err := client.Eth.PendingNonceAt(ctx, client.Account)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := client.Eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit, err := client.Eth.EstimateGas(ctx, ethereum.CallMsg{
		From: client.Account,
		To:   &contract,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("%s would revert: %w", method, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit + gasLimit/5,
		To:       &contract,
		Data:     data,
	})

	chainID := new(big.Int).SetUint64(client.Chain.ChainID)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), client.Key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := client.Eth.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	g.log.Debug("submitted", "method", method, "hash", signed.Hash().Hex())
	return signed.Hash().Hex(), nil
}

var _ usecase.ChainGateway = (*Gateway)(nil)
