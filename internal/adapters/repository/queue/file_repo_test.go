package queue

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

func testMetadata(txType models.TxType) models.Metadata {
	return models.Metadata{
		Kind:   txType,
		Amount: math.LegacyNewDec(10),
	}
}

func TestAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and pending status", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		entry, err := repo.Append(ctx, models.TxClaim, 31337, testMetadata(models.TxClaim), nil)
		require.NoError(t, err)
		assert.Regexp(t, `^tx-`, entry.ID)
		assert.Equal(t, models.StatusPending, entry.Status)
		assert.Equal(t, uint64(31337), entry.ChainID)
		assert.Empty(t, entry.Hash)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("ids are unique", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			entry, err := repo.Append(ctx, models.TxBurn, 1, testMetadata(models.TxBurn), nil)
			require.NoError(t, err)
			assert.False(t, seen[entry.ID])
			seen[entry.ID] = true
		}
	})

	t.Run("rejects mismatched metadata kind", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		_, err = repo.Append(ctx, models.TxClaim, 1, testMetadata(models.TxBurn), nil)
		assert.ErrorIs(t, err, domain.ErrMetadataMismatch)
	})
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh repository restores the queue", func(t *testing.T) {
		dir := t.TempDir()

		repo, err := NewFileRepository(dir)
		require.NoError(t, err)

		md := models.Metadata{
			Kind:      models.TxClaim,
			Amount:    math.LegacyMustNewDecFromStr("25.5"),
			Recipient: "0x1111111111111111111111111111111111111111",
		}
		opt := models.NewOptimisticUpdate()
		opt.PendingChange = md.Amount.Neg()
		opt.ClaimedChange = md.Amount

		entry, err := repo.Append(ctx, models.TxClaim, 31337, md, opt)
		require.NoError(t, err)

		status := models.StatusSubmitted
		hash := "0xabc123"
		require.NoError(t, repo.Update(ctx, entry.ID, models.TransactionPatch{Status: &status, Hash: &hash}))

		// Reopen from disk
		reopened, err := NewFileRepository(dir)
		require.NoError(t, err)

		got, err := reopened.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusSubmitted, got.Status)
		assert.Equal(t, "0xabc123", got.Hash)
		assert.Equal(t, models.TxClaim, got.Metadata.Kind)
		assert.True(t, md.Amount.Equal(got.Metadata.Amount))
		require.NotNil(t, got.Optimistic)
		assert.True(t, opt.ClaimedChange.Equal(got.Optimistic.ClaimedChange))
	})

	t.Run("missing files are an empty queue", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		entries, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		status := models.StatusSubmitted
		assert.NoError(t, repo.Update(ctx, "tx-does-not-exist", models.TransactionPatch{Status: &status}))
	})

	t.Run("rejects illegal transitions", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		entry, err := repo.Append(ctx, models.TxClaim, 1, testMetadata(models.TxClaim), nil)
		require.NoError(t, err)

		// pending cannot jump straight to confirmed
		confirmed := models.StatusConfirmed
		err = repo.Update(ctx, entry.ID, models.TransactionPatch{Status: &confirmed})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		submitted := models.StatusSubmitted
		require.NoError(t, repo.Update(ctx, entry.ID, models.TransactionPatch{Status: &submitted}))
		require.NoError(t, repo.Update(ctx, entry.ID, models.TransactionPatch{Status: &confirmed}))

		// confirmed is terminal
		failed := models.StatusFailed
		err = repo.Update(ctx, entry.ID, models.TransactionPatch{Status: &failed})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("hash is write-once", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		entry, err := repo.Append(ctx, models.TxBurn, 1, testMetadata(models.TxBurn), nil)
		require.NoError(t, err)

		first := "0xfirst"
		require.NoError(t, repo.Update(ctx, entry.ID, models.TransactionPatch{Hash: &first}))

		second := "0xsecond"
		require.NoError(t, repo.Update(ctx, entry.ID, models.TransactionPatch{Hash: &second}))

		got, err := repo.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, "0xfirst", got.Hash)
	})

	t.Run("merges receipt and confirmation timestamp", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		entry, err := repo.Append(ctx, models.TxStake, 1, testMetadata(models.TxStake), nil)
		require.NoError(t, err)

		submitted := models.StatusSubmitted
		require.NoError(t, repo.Update(ctx, entry.ID, models.TransactionPatch{Status: &submitted}))

		confirmed := models.StatusConfirmed
		now := time.Now().UTC()
		receipt := &models.Receipt{TxHash: "0xdead", BlockNumber: 42, GasUsed: 21000, Success: true}
		require.NoError(t, repo.Update(ctx, entry.ID, models.TransactionPatch{
			Status:      &confirmed,
			Receipt:     receipt,
			ConfirmedAt: &now,
		}))

		got, err := repo.Get(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Receipt)
		assert.Equal(t, uint64(42), got.Receipt.BlockNumber)
		require.NotNil(t, got.ConfirmedAt)
		assert.True(t, got.ConfirmedAt.Equal(now))
	})
}

func TestListPending(t *testing.T) {
	ctx := context.Background()

	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	first, err := repo.Append(ctx, models.TxClaim, 1, testMetadata(models.TxClaim), nil)
	require.NoError(t, err)
	second, err := repo.Append(ctx, models.TxBurn, 1, testMetadata(models.TxBurn), nil)
	require.NoError(t, err)
	third, err := repo.Append(ctx, models.TxStake, 1, testMetadata(models.TxStake), nil)
	require.NoError(t, err)

	// Finalize the middle entry
	failed := models.StatusFailed
	require.NoError(t, repo.Update(ctx, second.ID, models.TransactionPatch{Status: &failed}))

	submitted := models.StatusSubmitted
	require.NoError(t, repo.Update(ctx, third.ID, models.TransactionPatch{Status: &submitted}))

	open, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, first.ID, open[0].ID)
	assert.Equal(t, third.ID, open[1].ID)
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	t.Run("removes all entries", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := NewFileRepository(dir)
		require.NoError(t, err)

		_, err = repo.Append(ctx, models.TxClaim, 1, testMetadata(models.TxClaim), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Clear(ctx))

		entries, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)

		// Cleared state survives a reopen
		reopened, err := NewFileRepository(dir)
		require.NoError(t, err)
		entries, err = reopened.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("clearing an empty queue is fine", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		assert.NoError(t, repo.Clear(ctx))
		assert.NoError(t, repo.Clear(ctx))
	})
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := NewFileRepository(dir)
		require.NoError(t, err)

		snap := &models.BalanceSnapshot{
			Address:   "0x2222222222222222222222222222222222222222",
			Balance:   math.LegacyMustNewDecFromStr("1234.5"),
			Timestamp: time.Now().UTC(),
		}
		require.NoError(t, repo.SaveSnapshot(ctx, snap))

		reopened, err := NewFileRepository(dir)
		require.NoError(t, err)

		got, err := reopened.GetSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, snap.Address, got.Address)
		assert.True(t, snap.Balance.Equal(got.Balance))
	})

	t.Run("missing snapshot", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)

		_, err = repo.GetSnapshot(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
