package service

import (
	"context"
	"fmt"
	"time"

	"pawbot/config"
	"pawbot/events"
	"pawbot/models"
)

type gamblingService struct {
	uowFactory UnitOfWorkFactory
	resolver   OutcomeResolver
	cfg        *config.Config
}

// NewGamblingService creates a new gambling service
func NewGamblingService(uowFactory UnitOfWorkFactory, resolver OutcomeResolver, cfg *config.Config) GamblingService {
	return &gamblingService{
		uowFactory: uowFactory,
		resolver:   resolver,
		cfg:        cfg,
	}
}

// Gamble stakes up to the configured maximum on a weighted draw. The gate
// check, draw, balance mutation and timestamp write all run inside one
// transaction; a denial leaves nothing mutated.
func (s *gamblingService) Gamble(ctx context.Context, userID, guildID, stake int64) (*models.GambleResult, error) {
	if stake < 0 || stake > s.cfg.MaxGambleStake {
		return &models.GambleResult{
			Allowed:      false,
			Stake:        stake,
			InvalidStake: true,
		}, nil
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	settings, err := uow.GuildSettingsRepository().GetSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	last, err := uow.RateLimitRepository().GetLast(ctx, userID, guildID, models.ActionGamble)
	if err != nil {
		return nil, fmt.Errorf("failed to get last gamble: %w", err)
	}

	now := time.Now().UTC()
	elapsed := now.Sub(last)
	if elapsed < settings.GambleInterval.Duration() {
		return &models.GambleResult{
			Allowed:       false,
			Stake:         stake,
			WaitRemaining: settings.GambleInterval.Duration() - elapsed,
		}, nil
	}

	oldBalance, err := uow.BalanceRepository().GetBalance(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if oldBalance < stake {
		return &models.GambleResult{
			Allowed:           false,
			Stake:             stake,
			InsufficientFunds: true,
		}, nil
	}

	won := s.resolver.Resolve(settings.GambleChance)

	delta := stake
	transactionType := models.TransactionTypeGambleWin
	if !won {
		delta = -stake
		transactionType = models.TransactionTypeGambleLoss
	}

	newBalance, err := uow.BalanceRepository().ApplyDelta(ctx, userID, guildID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to apply gamble delta: %w", err)
	}

	if _, err := uow.RateLimitRepository().SetLast(ctx, userID, guildID, models.ActionGamble, now); err != nil {
		return nil, fmt.Errorf("failed to set last gamble: %w", err)
	}

	history := &models.BalanceHistory{
		UserID:          userID,
		GuildID:         guildID,
		BalanceBefore:   oldBalance,
		BalanceAfter:    newBalance,
		ChangeAmount:    delta,
		TransactionType: transactionType,
		TransactionMetadata: map[string]any{
			"stake":         stake,
			"gamble_chance": settings.GambleChance,
			"won":           won,
		},
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	uow.EventBus().Publish(events.GambleResolvedEvent{
		UserID:     userID,
		GuildID:    guildID,
		Stake:      stake,
		Won:        won,
		NewBalance: newBalance,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.GambleResult{
		Allowed:    true,
		Won:        won,
		Stake:      stake,
		NewBalance: newBalance,
	}, nil
}
