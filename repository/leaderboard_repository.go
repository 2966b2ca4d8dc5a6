package repository

import (
	"context"
	"fmt"

	"pawbot/database"
	"pawbot/models"

	"github.com/jackc/pgx/v5"
)

// LeaderboardRepository implements the LeaderboardRepository interface
type LeaderboardRepository struct {
	q queryable
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *database.DB) *LeaderboardRepository {
	return &LeaderboardRepository{q: db.Pool}
}

// newLeaderboardRepositoryWithTx creates a new leaderboard repository with a transaction
func newLeaderboardRepositoryWithTx(tx queryable) *LeaderboardRepository {
	return &LeaderboardRepository{q: tx}
}

// GetPage returns up to pageSize balances for a guild ordered by count
// descending, offset by (page-1)*pageSize. An out-of-range page returns an
// empty slice.
func (r *LeaderboardRepository) GetPage(ctx context.Context, guildID int64, page, pageSize int) ([]*models.LeaderboardEntry, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be positive, got %d", page)
	}
	offset := (page - 1) * pageSize

	query := `
		SELECT user_id, count
		FROM paw_counts
		WHERE guild_id = $1
		ORDER BY count DESC, user_id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.q.Query(ctx, query, guildID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard page %d for guild %d: %w", page, guildID, err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}

	return entries, nil
}

// GetAggregates returns the guild-wide farmer count and paw total,
// independent of paging.
func (r *LeaderboardRepository) GetAggregates(ctx context.Context, guildID int64) (int64, int64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(count), 0)
		FROM paw_counts
		WHERE guild_id = $1
	`

	var farmerCount, totalPaws int64
	if err := r.q.QueryRow(ctx, query, guildID).Scan(&farmerCount, &totalPaws); err != nil {
		return 0, 0, fmt.Errorf("failed to get aggregates for guild %d: %w", guildID, err)
	}

	return farmerCount, totalPaws, nil
}

// GetRank returns the user's 1-based dense rank by descending count within
// the guild. Ties share a rank. A user with no balance row is unranked and
// reported as 0.
func (r *LeaderboardRepository) GetRank(ctx context.Context, userID, guildID int64) (int64, error) {
	query := `
		SELECT rank FROM (
			SELECT user_id, DENSE_RANK() OVER (ORDER BY count DESC) AS rank
			FROM paw_counts
			WHERE guild_id = $1
		) ranked
		WHERE user_id = $2
	`

	var rank int64
	err := r.q.QueryRow(ctx, query, guildID, userID).Scan(&rank)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get rank for user %d in guild %d: %w", userID, guildID, err)
	}

	return rank, nil
}
