package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

func TestClaimRewards(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewClaimRewards(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		result, err := uc.Run(ctx, usecase.ClaimRewardsParams{Amount: math.LegacyNewDec(25)})
		require.NoError(t, err)
		assert.True(t, result.Optimistic)
		assert.NotEmpty(t, result.Hash)

		entry, err := env.repo.Get(ctx, result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, models.TxClaim, entry.Type)
		assert.Equal(t, models.StatusSubmitted, entry.Status)
		assert.Equal(t, result.Hash, entry.Hash)
		assert.Equal(t, testAccount.Hex(), entry.Metadata.Recipient)
		assert.True(t, entry.Metadata.Amount.Equal(math.LegacyNewDec(25)))

		// pending drops, claimed rises
		require.NotNil(t, entry.Optimistic)
		assert.True(t, entry.Optimistic.PendingChange.Equal(math.LegacyNewDec(-25)))
		assert.True(t, entry.Optimistic.ClaimedChange.Equal(math.LegacyNewDec(25)))
		assert.True(t, entry.Optimistic.BalanceChange.IsZero())

		// the contract call uses the 18-decimal representation
		assert.Equal(t, "mint("+testAccount.Hex()+",25000000000000000000)", env.chain.lastCall())

		// queued + submitted lifecycle events
		assert.Len(t, env.bus.byTopic(domain.TopicTransaction), 2)
		assert.Equal(t, []string{"claim submitted"}, env.notify.successes)
	})

	t.Run("bridge disabled", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Enabled = false
		uc := usecase.NewClaimRewards(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.ClaimRewardsParams{Amount: math.LegacyNewDec(25)})
		assert.ErrorIs(t, err, domain.ErrBridgeDisabled)

		entries, err := env.repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("no wallet connected", func(t *testing.T) {
		env := newTestEnv(t)
		env.chain.hasAccount = false
		uc := usecase.NewClaimRewards(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.ClaimRewardsParams{Amount: math.LegacyNewDec(25)})
		assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewClaimRewards(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.ClaimRewardsParams{Amount: math.LegacyNewDec(0)})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		entries, err := env.repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("explicit recipient", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewClaimRewards(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		recipient := "0xBBBB00000000000000000000000000000000BBBB"
		result, err := uc.Run(ctx, usecase.ClaimRewardsParams{
			Amount:    math.LegacyNewDec(1),
			Recipient: recipient,
		})
		require.NoError(t, err)

		entry, err := env.repo.Get(ctx, result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, recipient, entry.Metadata.Recipient)
	})

	t.Run("submission failure finalizes the entry", func(t *testing.T) {
		env := newTestEnv(t)
		env.chain.sendErr = errors.New("nonce too low")
		uc := usecase.NewClaimRewards(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.ClaimRewardsParams{Amount: math.LegacyNewDec(25)})
		require.Error(t, err)

		entries, err := env.repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.StatusFailed, entries[0].Status)
		assert.Equal(t, "nonce too low", entries[0].Error)
		assert.Empty(t, entries[0].Hash)
		assert.Equal(t, []string{"claim failed"}, env.notify.errors)

		// no orphaned pending entries remain
		open, err := env.repo.ListPending(ctx)
		require.NoError(t, err)
		assert.Empty(t, open)
	})
}

func TestBurnTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewBurnTokens(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		result, err := uc.Run(ctx, usecase.BurnTokensParams{Amount: math.LegacyNewDec(10)})
		require.NoError(t, err)

		entry, err := env.repo.Get(ctx, result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, models.TxBurn, entry.Type)
		assert.Equal(t, models.StatusSubmitted, entry.Status)

		// balance drops, spent rises
		require.NotNil(t, entry.Optimistic)
		assert.True(t, entry.Optimistic.BalanceChange.Equal(math.LegacyNewDec(-10)))
		assert.True(t, entry.Optimistic.SpentChange.Equal(math.LegacyNewDec(10)))

		assert.Equal(t, "burnFrom("+testAccount.Hex()+",10000000000000000000)", env.chain.lastCall())
	})

	t.Run("disabled bridge rejects the burn", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Enabled = false
		uc := usecase.NewBurnTokens(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.BurnTokensParams{Amount: math.LegacyNewDec(10)})
		assert.ErrorIs(t, err, domain.ErrBridgeDisabled)
	})
}

func TestStakeTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path with lock period", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewStakeTokens(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		result, err := uc.Run(ctx, usecase.StakeTokensParams{
			Amount:     math.LegacyNewDec(100),
			LockPeriod: 2592000,
		})
		require.NoError(t, err)

		entry, err := env.repo.Get(ctx, result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, models.TxStake, entry.Type)
		assert.Equal(t, uint64(2592000), entry.Metadata.LockPeriod)
		assert.True(t, entry.Optimistic.BalanceChange.Equal(math.LegacyNewDec(-100)))

		assert.Equal(t, "stake(100000000000000000000,2592000)", env.chain.lastCall())
	})

	t.Run("staking contract not configured", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Chain.Contracts.Staking = ""
		uc := usecase.NewStakeTokens(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.StakeTokensParams{Amount: math.LegacyNewDec(100)})
		assert.ErrorIs(t, err, domain.ErrStakingNotConfigured)

		entries, err := env.repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestUnstakeTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("reads the staked amount back from the chain", func(t *testing.T) {
		env := newTestEnv(t)
		env.chain.stakes[3] = models.ToWei(math.LegacyNewDec(5))
		uc := usecase.NewUnstakeTokens(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		result, err := uc.Run(ctx, usecase.UnstakeTokensParams{StakeID: 3})
		require.NoError(t, err)

		entry, err := env.repo.Get(ctx, result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, models.TxUnstake, entry.Type)
		assert.Equal(t, uint64(3), entry.Metadata.StakeID)
		assert.True(t, entry.Metadata.Amount.Equal(math.LegacyNewDec(5)))

		// released amount returns to the balance
		assert.True(t, entry.Optimistic.BalanceChange.Equal(math.LegacyNewDec(5)))

		assert.Equal(t, "unstake(3)", env.chain.lastCall())
	})

	t.Run("unknown stake id", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewUnstakeTokens(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.UnstakeTokensParams{StakeID: 99})
		assert.ErrorIs(t, err, domain.ErrStakeNotFound)
	})
}

func TestMintBadge(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewMintBadge(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		result, err := uc.Run(ctx, usecase.MintBadgeParams{TokenID: 7})
		require.NoError(t, err)

		entry, err := env.repo.Get(ctx, result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, models.TxMintNFT, entry.Type)
		assert.Equal(t, uint64(7), entry.Metadata.TokenID)
		assert.True(t, entry.Metadata.Amount.IsZero())
		assert.Nil(t, entry.Optimistic)

		assert.Equal(t, "badgeMint("+testAccount.Hex()+",7)", env.chain.lastCall())
	})

	t.Run("badge contract not configured", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Chain.Contracts.Badge = ""
		uc := usecase.NewMintBadge(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.MintBadgeParams{TokenID: 7})
		assert.ErrorIs(t, err, domain.ErrBadgeNotConfigured)
	})
}

func TestSubmitVote(t *testing.T) {
	ctx := context.Background()

	t.Run("vote with reason uses castVoteWithReason", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewSubmitVote(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		result, err := uc.Run(ctx, usecase.SubmitVoteParams{
			ProposalID: 1,
			Support:    1,
			Reason:     "support",
		})
		require.NoError(t, err)
		assert.Equal(t, "castVoteWithReason(1,1,support)", env.chain.lastCall())

		entry, err := env.repo.Get(ctx, result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, models.TxVote, entry.Type)
		assert.Equal(t, "support", entry.Metadata.Reason)
	})

	t.Run("vote without reason uses castVote", func(t *testing.T) {
		env := newTestEnv(t)
		uc := usecase.NewSubmitVote(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.SubmitVoteParams{ProposalID: 1, Support: 0})
		require.NoError(t, err)
		assert.Equal(t, "castVote(1,0)", env.chain.lastCall())
	})

	t.Run("governor not configured", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Chain.Contracts.Governor = ""
		uc := usecase.NewSubmitVote(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

		_, err := uc.Run(ctx, usecase.SubmitVoteParams{ProposalID: 1, Support: 1})
		assert.ErrorIs(t, err, domain.ErrGovernorNotConfigured)
	})
}

func TestSubmitFailureKeepsWei(t *testing.T) {
	// A failed submission must not retry with mutated amounts: the recorded
	// metadata keeps the human-unit value.
	ctx := context.Background()
	env := newTestEnv(t)
	env.chain.sendErr = errors.New("gas estimation failed")
	uc := usecase.NewStakeTokens(env.cfg, env.repo, env.chain, env.bus, env.notify, env.log)

	_, err := uc.Run(ctx, usecase.StakeTokensParams{Amount: math.LegacyMustNewDecFromStr("0.5")})
	require.Error(t, err)

	entries, err := env.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Metadata.Amount.Equal(math.LegacyMustNewDecFromStr("0.5")))
	assert.Equal(t, big.NewInt(500000000000000000), models.ToWei(entries[0].Metadata.Amount))
}
