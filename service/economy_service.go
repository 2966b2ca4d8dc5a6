package service

import (
	"context"
	"fmt"
	"time"

	"pawbot/config"
	"pawbot/events"
	"pawbot/models"
)

type economyService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
}

// NewEconomyService creates a new economy service
func NewEconomyService(uowFactory UnitOfWorkFactory, cfg *config.Config) EconomyService {
	return &economyService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

// Daily claims the daily paw grant. A claim inside the cool-down is a
// structured denial that reports the remaining wait and leaves the stored
// timestamp untouched.
func (s *economyService) Daily(ctx context.Context, userID, guildID int64) (*models.DailyResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	last, err := uow.RateLimitRepository().GetLast(ctx, userID, guildID, models.ActionDaily)
	if err != nil {
		return nil, fmt.Errorf("failed to get last daily: %w", err)
	}

	now := time.Now().UTC()
	elapsed := now.Sub(last)
	if elapsed < s.cfg.DailyInterval {
		return &models.DailyResult{
			Granted:       false,
			WaitRemaining: s.cfg.DailyInterval - elapsed,
		}, nil
	}

	oldBalance, err := uow.BalanceRepository().GetBalance(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	newBalance, err := uow.BalanceRepository().ApplyDelta(ctx, userID, guildID, s.cfg.DailyAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to grant daily paws: %w", err)
	}

	// The timestamp write is ordered after the gate check so a denied claim
	// never refreshes the cool-down
	if _, err := uow.RateLimitRepository().SetLast(ctx, userID, guildID, models.ActionDaily, now); err != nil {
		return nil, fmt.Errorf("failed to set last daily: %w", err)
	}

	history := &models.BalanceHistory{
		UserID:          userID,
		GuildID:         guildID,
		BalanceBefore:   oldBalance,
		BalanceAfter:    newBalance,
		ChangeAmount:    s.cfg.DailyAmount,
		TransactionType: models.TransactionTypeDaily,
		TransactionMetadata: map[string]any{
			"daily_amount": s.cfg.DailyAmount,
		},
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	uow.EventBus().Publish(events.DailyClaimedEvent{
		UserID:     userID,
		GuildID:    guildID,
		Amount:     s.cfg.DailyAmount,
		NewBalance: newBalance,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.DailyResult{
		Granted:    true,
		NewBalance: newBalance,
	}, nil
}

// Balance returns a user's paw count
func (s *economyService) Balance(ctx context.Context, userID, guildID int64) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	balance, err := uow.BalanceRepository().GetBalance(ctx, userID, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return balance, nil
}
