package repository

import (
	"context"
	"errors"
	"fmt"

	"pawbot/database"
	"pawbot/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// BalanceRepository implements the BalanceRepository interface
type BalanceRepository struct {
	q queryable
}

// NewBalanceRepository creates a new balance repository
func NewBalanceRepository(db *database.DB) *BalanceRepository {
	return &BalanceRepository{q: db.Pool}
}

// newBalanceRepositoryWithTx creates a new balance repository with a transaction
func newBalanceRepositoryWithTx(tx queryable) *BalanceRepository {
	return &BalanceRepository{q: tx}
}

// GetBalance retrieves a user's paw count, returning 0 when no row exists
func (r *BalanceRepository) GetBalance(ctx context.Context, userID, guildID int64) (int64, error) {
	query := `
		SELECT count
		FROM paw_counts
		WHERE user_id = $1 AND guild_id = $2
	`

	var count int64
	err := r.q.QueryRow(ctx, query, userID, guildID).Scan(&count)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get paw count for user %d in guild %d: %w", userID, guildID, err)
	}

	return count, nil
}

// ApplyDelta atomically adds delta to a user's paw count, creating the row
// with the delta as initial count when absent. The non-negativity check is
// enforced by the count check constraint in the same statement, so two
// concurrent deltas can never jointly overdraw the account.
func (r *BalanceRepository) ApplyDelta(ctx context.Context, userID, guildID, delta int64) (int64, error) {
	query := `
		INSERT INTO paw_counts (user_id, guild_id, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, guild_id)
		DO UPDATE SET count = paw_counts.count + $3, updated_at = NOW()
		RETURNING count
	`

	var count int64
	err := r.q.QueryRow(ctx, query, userID, guildID, delta).Scan(&count)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23514 = check_violation: the delta would drive the count negative
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return 0, models.ErrInsufficientBalance
		}
		return 0, fmt.Errorf("failed to apply delta %d for user %d in guild %d: %w", delta, userID, guildID, err)
	}

	return count, nil
}
