package service

import (
	"context"
	"fmt"

	"pawbot/config"
	"pawbot/models"
)

type leaderboardService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(uowFactory UnitOfWorkFactory, cfg *config.Config) LeaderboardService {
	return &leaderboardService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

// Top returns one leaderboard page with guild aggregates and the requester's
// own rank and balance. All reads share one transaction so the page,
// aggregates and rank are a consistent snapshot. An out-of-range page yields
// an empty entry list with still-correct aggregates.
func (s *leaderboardService) Top(ctx context.Context, guildID int64, page int, requesterID int64) (*models.TopResult, error) {
	if page < 1 {
		page = 1
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entries, err := uow.LeaderboardRepository().GetPage(ctx, guildID, page, s.cfg.LeaderboardPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard page: %w", err)
	}

	farmerCount, totalPaws, err := uow.LeaderboardRepository().GetAggregates(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard aggregates: %w", err)
	}

	rank, err := uow.LeaderboardRepository().GetRank(ctx, requesterID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requester rank: %w", err)
	}

	balance, err := uow.BalanceRepository().GetBalance(ctx, requesterID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requester balance: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.TopResult{
		Entries:          entries,
		Page:             page,
		FarmerCount:      farmerCount,
		TotalPaws:        totalPaws,
		RequesterRank:    rank,
		RequesterBalance: balance,
	}, nil
}
