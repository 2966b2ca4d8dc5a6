package repository

import (
	"context"
	"testing"

	"pawbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRepository_GetPage(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	boardRepo := NewLeaderboardRepository(testDB.DB)
	balanceRepo := NewBalanceRepository(testDB.DB)
	ctx := context.Background()

	// 15 farmers with counts 15 down to 1
	const guildID = int64(300)
	for i := int64(1); i <= 15; i++ {
		_, err := balanceRepo.ApplyDelta(ctx, i, guildID, 16-i)
		require.NoError(t, err)
	}
	// Another guild's farmer must never leak into this board
	_, err := balanceRepo.ApplyDelta(ctx, 99, 301, 1000)
	require.NoError(t, err)

	t.Run("first page holds the top ten", func(t *testing.T) {
		entries, err := boardRepo.GetPage(ctx, guildID, 1, 10)
		require.NoError(t, err)
		require.Len(t, entries, 10)

		assert.Equal(t, int64(1), entries[0].UserID)
		assert.Equal(t, int64(15), entries[0].Count)
		assert.Equal(t, int64(10), entries[9].UserID)
		assert.Equal(t, int64(6), entries[9].Count)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		entries, err := boardRepo.GetPage(ctx, guildID, 2, 10)
		require.NoError(t, err)
		require.Len(t, entries, 5)

		assert.Equal(t, int64(11), entries[0].UserID)
		assert.Equal(t, int64(15), entries[4].UserID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		entries, err := boardRepo.GetPage(ctx, guildID, 3, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("page below one is rejected", func(t *testing.T) {
		_, err := boardRepo.GetPage(ctx, guildID, 0, 10)
		assert.Error(t, err)
	})

	t.Run("empty guild has an empty board", func(t *testing.T) {
		entries, err := boardRepo.GetPage(ctx, 999, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestLeaderboardRepository_GetAggregates(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	boardRepo := NewLeaderboardRepository(testDB.DB)
	balanceRepo := NewBalanceRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty guild aggregates to zero", func(t *testing.T) {
		farmers, total, err := boardRepo.GetAggregates(ctx, 800)
		require.NoError(t, err)
		assert.Equal(t, int64(0), farmers)
		assert.Equal(t, int64(0), total)
	})

	t.Run("counts farmers and sums paws per guild", func(t *testing.T) {
		_, err := balanceRepo.ApplyDelta(ctx, 1, 800, 10)
		require.NoError(t, err)
		_, err = balanceRepo.ApplyDelta(ctx, 2, 800, 5)
		require.NoError(t, err)
		_, err = balanceRepo.ApplyDelta(ctx, 3, 801, 100)
		require.NoError(t, err)

		farmers, total, err := boardRepo.GetAggregates(ctx, 800)
		require.NoError(t, err)
		assert.Equal(t, int64(2), farmers)
		assert.Equal(t, int64(15), total)
	})
}

func TestLeaderboardRepository_GetRank(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	boardRepo := NewLeaderboardRepository(testDB.DB)
	balanceRepo := NewBalanceRepository(testDB.DB)
	ctx := context.Background()

	const guildID = int64(600)
	// Two farmers tied at 20, one at 10
	_, err := balanceRepo.ApplyDelta(ctx, 1, guildID, 20)
	require.NoError(t, err)
	_, err = balanceRepo.ApplyDelta(ctx, 2, guildID, 20)
	require.NoError(t, err)
	_, err = balanceRepo.ApplyDelta(ctx, 3, guildID, 10)
	require.NoError(t, err)

	t.Run("ties share a dense rank", func(t *testing.T) {
		rank1, err := boardRepo.GetRank(ctx, 1, guildID)
		require.NoError(t, err)
		rank2, err := boardRepo.GetRank(ctx, 2, guildID)
		require.NoError(t, err)

		assert.Equal(t, int64(1), rank1)
		assert.Equal(t, int64(1), rank2)
	})

	t.Run("next distinct count takes the next rank", func(t *testing.T) {
		rank, err := boardRepo.GetRank(ctx, 3, guildID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), rank)
	})

	t.Run("unranked user gets zero", func(t *testing.T) {
		rank, err := boardRepo.GetRank(ctx, 42, guildID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rank)
	})

	t.Run("ranks are computed per guild", func(t *testing.T) {
		_, err := balanceRepo.ApplyDelta(ctx, 3, 601, 500)
		require.NoError(t, err)

		rank, err := boardRepo.GetRank(ctx, 3, 601)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rank)
	})
}
