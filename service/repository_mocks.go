package service

import (
	"context"
	"time"

	"pawbot/events"
	"pawbot/models"

	"github.com/stretchr/testify/mock"
)

// MockBalanceRepository is a mock implementation of BalanceRepository
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) GetBalance(ctx context.Context, userID, guildID int64) (int64, error) {
	args := m.Called(ctx, userID, guildID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceRepository) ApplyDelta(ctx context.Context, userID, guildID, delta int64) (int64, error) {
	args := m.Called(ctx, userID, guildID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// MockRateLimitRepository is a mock implementation of RateLimitRepository
type MockRateLimitRepository struct {
	mock.Mock
}

func (m *MockRateLimitRepository) GetLast(ctx context.Context, userID, guildID int64, action models.ActionKind) (time.Time, error) {
	args := m.Called(ctx, userID, guildID, action)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockRateLimitRepository) SetLast(ctx context.Context, userID, guildID int64, action models.ActionKind, t time.Time) (time.Time, error) {
	args := m.Called(ctx, userID, guildID, action, t)
	return args.Get(0).(time.Time), args.Error(1)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildSettings), args.Error(1)
}

// MockLeaderboardRepository is a mock implementation of LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) GetPage(ctx context.Context, guildID int64, page, pageSize int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, guildID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) GetAggregates(ctx context.Context, guildID int64) (int64, int64, error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeaderboardRepository) GetRank(ctx context.Context, userID, guildID int64) (int64, error) {
	args := m.Called(ctx, userID, guildID)
	return args.Get(0).(int64), args.Error(1)
}

// MockBalanceHistoryRepository is a mock implementation of BalanceHistoryRepository
type MockBalanceHistoryRepository struct {
	mock.Mock
}

func (m *MockBalanceHistoryRepository) Record(ctx context.Context, history *models.BalanceHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockBalanceHistoryRepository) GetByUser(ctx context.Context, userID, guildID int64, limit int) ([]*models.BalanceHistory, error) {
	args := m.Called(ctx, userID, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BalanceHistory), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// recordingPublisher collects published events without expectations
type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.published = append(p.published, event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	balanceRepo   BalanceRepository
	rateLimitRepo RateLimitRepository
	settingsRepo  GuildSettingsRepository
	boardRepo     LeaderboardRepository
	historyRepo   BalanceHistoryRepository
	publisher     EventPublisher
}

// SetRepositories wires mock repositories into the unit of work
func (m *MockUnitOfWork) SetRepositories(
	balanceRepo BalanceRepository,
	rateLimitRepo RateLimitRepository,
	settingsRepo GuildSettingsRepository,
	boardRepo LeaderboardRepository,
	historyRepo BalanceHistoryRepository,
) {
	m.balanceRepo = balanceRepo
	m.rateLimitRepo = rateLimitRepo
	m.settingsRepo = settingsRepo
	m.boardRepo = boardRepo
	m.historyRepo = historyRepo
	m.publisher = &recordingPublisher{}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) BalanceRepository() BalanceRepository {
	return m.balanceRepo
}

func (m *MockUnitOfWork) RateLimitRepository() RateLimitRepository {
	return m.rateLimitRepo
}

func (m *MockUnitOfWork) GuildSettingsRepository() GuildSettingsRepository {
	return m.settingsRepo
}

func (m *MockUnitOfWork) LeaderboardRepository() LeaderboardRepository {
	return m.boardRepo
}

func (m *MockUnitOfWork) BalanceHistoryRepository() BalanceHistoryRepository {
	return m.historyRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.publisher
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}

// fixedResolver always resolves to the same outcome, for deterministic tests
type fixedResolver struct {
	outcome bool
}

func (r fixedResolver) Resolve(successPercent int) bool {
	return r.outcome
}
