package repository

import (
	"context"
	"testing"
	"time"

	"pawbot/models"
	"pawbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitRepository_GetLast(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRateLimitRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing row yields sentinel", func(t *testing.T) {
		last, err := repo.GetLast(ctx, 1, 2, models.ActionDaily)
		require.NoError(t, err)
		assert.True(t, last.Equal(models.NeverPerformed))
	})

	t.Run("unset action yields sentinel even when row exists", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		_, err := repo.SetLast(ctx, 1, 2, models.ActionDaily, now)
		require.NoError(t, err)

		last, err := repo.GetLast(ctx, 1, 2, models.ActionSteal)
		require.NoError(t, err)
		assert.True(t, last.Equal(models.NeverPerformed))
	})

	t.Run("unknown action kind is rejected", func(t *testing.T) {
		_, err := repo.GetLast(ctx, 1, 2, models.ActionKind("nap"))
		assert.Error(t, err)
	})
}

func TestRateLimitRepository_SetLast(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRateLimitRepository(testDB.DB)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		ts := time.Now().UTC().Truncate(time.Microsecond)
		_, err := repo.SetLast(ctx, 5, 6, models.ActionGamble, ts)
		require.NoError(t, err)

		last, err := repo.GetLast(ctx, 5, 6, models.ActionGamble)
		require.NoError(t, err)
		assert.True(t, last.Equal(ts))
	})

	t.Run("actions update independently", func(t *testing.T) {
		dailyTS := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
		stealTS := time.Now().UTC().Truncate(time.Microsecond)

		_, err := repo.SetLast(ctx, 5, 6, models.ActionDaily, dailyTS)
		require.NoError(t, err)
		_, err = repo.SetLast(ctx, 5, 6, models.ActionSteal, stealTS)
		require.NoError(t, err)

		daily, err := repo.GetLast(ctx, 5, 6, models.ActionDaily)
		require.NoError(t, err)
		steal, err := repo.GetLast(ctx, 5, 6, models.ActionSteal)
		require.NoError(t, err)
		gamble, err := repo.GetLast(ctx, 5, 6, models.ActionGamble)
		require.NoError(t, err)

		assert.True(t, daily.Equal(dailyTS))
		assert.True(t, steal.Equal(stealTS))
		// Gamble was set in the round-trip subtest, not here
		assert.False(t, gamble.Equal(models.NeverPerformed))
	})

	t.Run("overwrites previous timestamp", func(t *testing.T) {
		first := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Microsecond)
		second := time.Now().UTC().Truncate(time.Microsecond)

		_, err := repo.SetLast(ctx, 9, 6, models.ActionDaily, first)
		require.NoError(t, err)
		_, err = repo.SetLast(ctx, 9, 6, models.ActionDaily, second)
		require.NoError(t, err)

		last, err := repo.GetLast(ctx, 9, 6, models.ActionDaily)
		require.NoError(t, err)
		assert.True(t, last.Equal(second))
	})
}
