package repository

import (
	"context"
	"fmt"
	"time"

	"pawbot/database"
	"pawbot/models"

	"github.com/jackc/pgx/v5"
)

// RateLimitRepository implements the RateLimitRepository interface
type RateLimitRepository struct {
	q queryable
}

// NewRateLimitRepository creates a new rate limit repository
func NewRateLimitRepository(db *database.DB) *RateLimitRepository {
	return &RateLimitRepository{q: db.Pool}
}

// newRateLimitRepositoryWithTx creates a new rate limit repository with a transaction
func newRateLimitRepositoryWithTx(tx queryable) *RateLimitRepository {
	return &RateLimitRepository{q: tx}
}

// actionColumn maps an action kind to its user_limits column. The column name
// is interpolated into SQL, so it must come from this closed set.
func actionColumn(action models.ActionKind) (string, error) {
	switch action {
	case models.ActionDaily:
		return "last_daily", nil
	case models.ActionSteal:
		return "last_steal", nil
	case models.ActionGamble:
		return "last_gamble", nil
	default:
		return "", fmt.Errorf("unknown action kind %q", action)
	}
}

// GetLast returns when the user last performed the action in the guild.
// A missing row or a never-set column reports models.NeverPerformed so that a
// first-time action always passes its gate. A column that exists but fails to
// decode is a fault, not a default.
func (r *RateLimitRepository) GetLast(ctx context.Context, userID, guildID int64, action models.ActionKind) (time.Time, error) {
	column, err := actionColumn(action)
	if err != nil {
		return time.Time{}, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM user_limits
		WHERE user_id = $1 AND guild_id = $2
	`, column)

	var last *time.Time
	err = r.q.QueryRow(ctx, query, userID, guildID).Scan(&last)
	if err == pgx.ErrNoRows {
		return models.NeverPerformed, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last %s for user %d in guild %d: %w", action, userID, guildID, err)
	}

	if last == nil {
		return models.NeverPerformed, nil
	}

	return *last, nil
}

// SetLast upserts the timestamp for a single action kind. On update the other
// action kinds' timestamps are untouched; on first insert they stay NULL.
func (r *RateLimitRepository) SetLast(ctx context.Context, userID, guildID int64, action models.ActionKind, t time.Time) (time.Time, error) {
	column, err := actionColumn(action)
	if err != nil {
		return time.Time{}, err
	}

	query := fmt.Sprintf(`
		INSERT INTO user_limits (user_id, guild_id, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, guild_id)
		DO UPDATE SET %s = $3
		RETURNING %s
	`, column, column, column)

	var stored time.Time
	err = r.q.QueryRow(ctx, query, userID, guildID, t).Scan(&stored)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to set last %s for user %d in guild %d: %w", action, userID, guildID, err)
	}

	return stored, nil
}
