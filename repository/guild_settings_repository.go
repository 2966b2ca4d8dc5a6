package repository

import (
	"context"
	"fmt"

	"pawbot/database"
	"pawbot/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// GuildSettingsRepository implements the GuildSettingsRepository interface
type GuildSettingsRepository struct {
	q queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// newGuildSettingsRepositoryWithTx creates a new guild settings repository with a transaction
func newGuildSettingsRepositoryWithTx(tx queryable) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: tx}
}

// GetSettings retrieves a guild's settings. Guilds without a row get the
// documented defaults; rows are provisioned outside the bot.
func (r *GuildSettingsRepository) GetSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	query := `
		SELECT steal_interval, gamble_interval, steal_chance, gamble_chance
		FROM guild_settings
		WHERE guild_id = $1
	`

	var stealInterval, gambleInterval pgtype.Interval
	settings := models.GuildSettings{GuildID: guildID}
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&stealInterval,
		&gambleInterval,
		&settings.StealChance,
		&settings.GambleChance,
	)

	if err == pgx.ErrNoRows {
		return models.DefaultGuildSettings(guildID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for guild %d: %w", guildID, err)
	}

	settings.StealInterval = models.IntervalFromPg(stealInterval)
	settings.GambleInterval = models.IntervalFromPg(gambleInterval)

	return &settings, nil
}
