package service

import (
	"context"
	"time"

	"pawbot/events"
	"pawbot/models"
)

// BalanceRepository defines the interface for paw ledger data access
type BalanceRepository interface {
	// GetBalance retrieves a user's paw count, returning 0 when no row exists
	GetBalance(ctx context.Context, userID, guildID int64) (int64, error)

	// ApplyDelta atomically adds delta to a user's paw count, creating the row
	// with the delta as initial count when absent. A delta that would drive
	// the count negative fails with models.ErrInsufficientBalance and leaves
	// the row unchanged. Returns the new count.
	ApplyDelta(ctx context.Context, userID, guildID, delta int64) (int64, error)
}

// RateLimitRepository defines the interface for per-action cool-down timestamps
type RateLimitRepository interface {
	// GetLast returns when the user last performed the action in the guild,
	// or models.NeverPerformed when no timestamp is recorded
	GetLast(ctx context.Context, userID, guildID int64, action models.ActionKind) (time.Time, error)

	// SetLast upserts the timestamp for a single action kind, leaving the
	// other action kinds' timestamps untouched
	SetLast(ctx context.Context, userID, guildID int64, action models.ActionKind, t time.Time) (time.Time, error)
}

// GuildSettingsRepository defines the interface for guild settings data access
type GuildSettingsRepository interface {
	// GetSettings retrieves a guild's settings, returning the documented
	// defaults when the guild has no row
	GetSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error)
}

// LeaderboardRepository defines the interface for ranked balance queries
type LeaderboardRepository interface {
	// GetPage returns up to one page of balances ordered by count descending.
	// An out-of-range page returns an empty slice, not an error.
	GetPage(ctx context.Context, guildID int64, page, pageSize int) ([]*models.LeaderboardEntry, error)

	// GetAggregates returns the guild-wide farmer count and paw total
	GetAggregates(ctx context.Context, guildID int64) (farmerCount, totalPaws int64, err error)

	// GetRank returns the user's 1-based dense rank by descending count
	// within the guild, or 0 when the user has no balance row
	GetRank(ctx context.Context, userID, guildID int64) (int64, error)
}

// BalanceHistoryRepository defines the interface for the balance audit trail
type BalanceHistoryRepository interface {
	// Record creates a new balance history entry
	Record(ctx context.Context, history *models.BalanceHistory) error

	// GetByUser returns the most recent balance history for a user in a guild
	GetByUser(ctx context.Context, userID, guildID int64, limit int) ([]*models.BalanceHistory, error)
}

// EconomyService defines the interface for the daily grant and balance reads
type EconomyService interface {
	// Daily claims the daily paw grant, or reports the remaining wait
	Daily(ctx context.Context, userID, guildID int64) (*models.DailyResult, error)

	// Balance returns a user's paw count
	Balance(ctx context.Context, userID, guildID int64) (int64, error)
}

// GamblingService defines the interface for the gamble action
type GamblingService interface {
	// Gamble stakes up to the configured maximum on a weighted draw
	Gamble(ctx context.Context, userID, guildID, stake int64) (*models.GambleResult, error)
}

// TransferService defines the interface for the two-account actions
type TransferService interface {
	// Give donates paws from caller to target
	Give(ctx context.Context, userID, guildID, targetID, amount int64) (*models.GiveResult, error)

	// Steal attempts to take paws from target; on a lost draw the caller
	// forfeits the same amount to the target
	Steal(ctx context.Context, userID, guildID, targetID, amount int64) (*models.StealResult, error)
}

// LeaderboardService defines the interface for leaderboard queries
type LeaderboardService interface {
	// Top returns one leaderboard page with guild aggregates and the
	// requester's own rank and balance
	Top(ctx context.Context, guildID int64, page int, requesterID int64) (*models.TopResult, error)
}

// OutcomeResolver decides probabilistic action outcomes
type OutcomeResolver interface {
	// Resolve performs a fresh weighted draw with P(true) = successPercent/100
	Resolve(successPercent int) bool
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	BalanceRepository() BalanceRepository
	RateLimitRepository() RateLimitRepository
	GuildSettingsRepository() GuildSettingsRepository
	LeaderboardRepository() LeaderboardRepository
	BalanceHistoryRepository() BalanceHistoryRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
