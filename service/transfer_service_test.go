package service

import (
	"context"
	"testing"
	"time"

	"pawbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransferService_Give_Success(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockBalanceRepo, _, _, _, mockHistoryRepo := newMockedUnitOfWork()

	service := NewTransferService(mockFactory, fixedResolver{outcome: true})

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockBalanceRepo.On("GetBalance", ctx, int64(100), int64(200)).Return(int64(10), nil)
	mockBalanceRepo.On("GetBalance", ctx, int64(300), int64(200)).Return(int64(2), nil)
	mockBalanceRepo.On("ApplyDelta", ctx, int64(100), int64(200), int64(-3)).Return(int64(7), nil)
	mockBalanceRepo.On("ApplyDelta", ctx, int64(300), int64(200), int64(3)).Return(int64(5), nil)

	mockHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 100 && h.TransactionType == models.TransactionTypeGiveOut && h.ChangeAmount == -3
	})).Return(nil)
	mockHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 300 && h.TransactionType == models.TransactionTypeGiveIn && h.ChangeAmount == 3
	})).Return(nil)

	result, err := service.Give(ctx, 100, 200, 300, 3)

	assert.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, int64(7), result.NewCallerBalance)

	mockUoW.AssertExpectations(t)
	mockBalanceRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestTransferService_Give_InvalidArgument(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, _, _, _, _, _ := newMockedUnitOfWork()

	service := NewTransferService(mockFactory, fixedResolver{outcome: true})

	tests := []struct {
		name     string
		targetID int64
		amount   int64
	}{
		{name: "self target", targetID: 100, amount: 3},
		{name: "zero amount", targetID: 300, amount: 0},
		{name: "negative amount", targetID: 300, amount: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Give(ctx, 100, 200, tt.targetID, tt.amount)

			assert.NoError(t, err)
			assert.False(t, result.OK)
			assert.True(t, result.InvalidArgument)
		})
	}

	mockFactory.AssertNotCalled(t, "Create")
}

func TestTransferService_Give_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockBalanceRepo, _, _, _, mockHistoryRepo := newMockedUnitOfWork()

	service := NewTransferService(mockFactory, fixedResolver{outcome: true})

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockBalanceRepo.On("GetBalance", ctx, int64(100), int64(200)).Return(int64(1), nil)
	mockBalanceRepo.On("GetBalance", ctx, int64(300), int64(200)).Return(int64(0), nil)
	// Debit trips the non-negative constraint
	mockBalanceRepo.On("ApplyDelta", ctx, int64(100), int64(200), int64(-3)).
		Return(int64(0), models.ErrInsufficientBalance)

	result, err := service.Give(ctx, 100, 200, 300, 3)

	assert.NoError(t, err)
	assert.False(t, result.OK)
	assert.True(t, result.InsufficientFunds)

	// The failed debit must not be followed by a credit or a commit
	mockBalanceRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, int64(300), mock.Anything, mock.Anything)
	mockHistoryRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestTransferService_Steal_Won(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockBalanceRepo, mockRateLimitRepo, mockSettingsRepo, _, mockHistoryRepo := newMockedUnitOfWork()

	service := NewTransferService(mockFactory, fixedResolver{outcome: true})

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockBalanceRepo.On("GetBalance", ctx, int64(100), int64(200)).Return(int64(10), nil)
	mockBalanceRepo.On("GetBalance", ctx, int64(300), int64(200)).Return(int64(8), nil)
	mockSettingsRepo.On("GetSettings", ctx, int64(200)).Return(models.DefaultGuildSettings(200), nil)
	mockRateLimitRepo.On("GetLast", ctx, int64(100), int64(200), models.ActionSteal).Return(models.NeverPerformed, nil)

	// Won: target debited first, then caller credited
	mockBalanceRepo.On("ApplyDelta", ctx, int64(300), int64(200), int64(-4)).Return(int64(4), nil)
	mockBalanceRepo.On("ApplyDelta", ctx, int64(100), int64(200), int64(4)).Return(int64(14), nil)
	mockRateLimitRepo.On("SetLast", ctx, int64(100), int64(200), models.ActionSteal, mock.AnythingOfType("time.Time")).Return(time.Now().UTC(), nil)

	mockHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 100 && h.TransactionType == models.TransactionTypeStealWin && h.ChangeAmount == 4
	})).Return(nil)
	mockHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 300 && h.TransactionType == models.TransactionTypeStealLoss && h.ChangeAmount == -4
	})).Return(nil)

	result, err := service.Steal(ctx, 100, 200, 300, 4)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.True(t, result.Won)
	assert.Equal(t, int64(14), result.NewCallerBalance)
	assert.Equal(t, int64(4), result.NewTargetBalance)

	mockBalanceRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestTransferService_Steal_Lost(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockBalanceRepo, mockRateLimitRepo, mockSettingsRepo, _, mockHistoryRepo := newMockedUnitOfWork()

	service := NewTransferService(mockFactory, fixedResolver{outcome: false})

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockBalanceRepo.On("GetBalance", ctx, int64(100), int64(200)).Return(int64(10), nil)
	mockBalanceRepo.On("GetBalance", ctx, int64(300), int64(200)).Return(int64(8), nil)
	mockSettingsRepo.On("GetSettings", ctx, int64(200)).Return(models.DefaultGuildSettings(200), nil)
	mockRateLimitRepo.On("GetLast", ctx, int64(100), int64(200), models.ActionSteal).Return(models.NeverPerformed, nil)

	// Lost: caller forfeits the staked amount to the target
	mockBalanceRepo.On("ApplyDelta", ctx, int64(100), int64(200), int64(-4)).Return(int64(6), nil)
	mockBalanceRepo.On("ApplyDelta", ctx, int64(300), int64(200), int64(4)).Return(int64(12), nil)
	mockRateLimitRepo.On("SetLast", ctx, int64(100), int64(200), models.ActionSteal, mock.AnythingOfType("time.Time")).Return(time.Now().UTC(), nil)
	mockHistoryRepo.On("Record", ctx, mock.AnythingOfType("*models.BalanceHistory")).Return(nil).Twice()

	result, err := service.Steal(ctx, 100, 200, 300, 4)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.False(t, result.Won)
	assert.Equal(t, int64(6), result.NewCallerBalance)
	assert.Equal(t, int64(12), result.NewTargetBalance)
}

func TestTransferService_Steal_DeniedWithoutTransaction(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, _, _, _, _, _ := newMockedUnitOfWork()

	service := NewTransferService(mockFactory, fixedResolver{outcome: true})

	tests := []struct {
		name     string
		targetID int64
		amount   int64
		reason   models.StealDenialReason
	}{
		{name: "self target", targetID: 100, amount: 4, reason: models.StealDeniedSelfTarget},
		{name: "zero amount", targetID: 300, amount: 0, reason: models.StealDeniedInvalidAmount},
		{name: "negative amount", targetID: 300, amount: -4, reason: models.StealDeniedInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Steal(ctx, 100, 200, tt.targetID, tt.amount)

			assert.NoError(t, err)
			assert.False(t, result.Allowed)
			assert.Equal(t, tt.reason, result.ReasonDenied)
		})
	}

	mockFactory.AssertNotCalled(t, "Create")
}

func TestTransferService_Steal_InsufficientBalances(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		callerBalance int64
		targetBalance int64
		reason        models.StealDenialReason
	}{
		{name: "caller below amount", callerBalance: 3, targetBalance: 10, reason: models.StealDeniedInsufficientCaller},
		{name: "target below amount", callerBalance: 10, targetBalance: 3, reason: models.StealDeniedInsufficientTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFactory, mockUoW, mockBalanceRepo, _, _, _, _ := newMockedUnitOfWork()
			service := NewTransferService(mockFactory, fixedResolver{outcome: true})

			mockFactory.On("Create").Return(mockUoW)
			mockUoW.On("Begin", ctx).Return(nil)
			mockUoW.On("Rollback").Return(nil)

			mockBalanceRepo.On("GetBalance", ctx, int64(100), int64(200)).Return(tt.callerBalance, nil)
			mockBalanceRepo.On("GetBalance", ctx, int64(300), int64(200)).Return(tt.targetBalance, nil).Maybe()

			result, err := service.Steal(ctx, 100, 200, 300, 4)

			assert.NoError(t, err)
			assert.False(t, result.Allowed)
			assert.Equal(t, tt.reason, result.ReasonDenied)

			mockBalanceRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			mockUoW.AssertNotCalled(t, "Commit")
		})
	}
}

func TestTransferService_Steal_RateLimited(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockBalanceRepo, mockRateLimitRepo, mockSettingsRepo, _, _ := newMockedUnitOfWork()

	service := NewTransferService(mockFactory, fixedResolver{outcome: true})

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	settings := models.DefaultGuildSettings(200)
	settings.StealInterval = models.Interval(2 * time.Hour)

	mockBalanceRepo.On("GetBalance", ctx, int64(100), int64(200)).Return(int64(10), nil)
	mockBalanceRepo.On("GetBalance", ctx, int64(300), int64(200)).Return(int64(10), nil)
	mockSettingsRepo.On("GetSettings", ctx, int64(200)).Return(settings, nil)
	mockRateLimitRepo.On("GetLast", ctx, int64(100), int64(200), models.ActionSteal).
		Return(time.Now().UTC().Add(-30*time.Minute), nil)

	result, err := service.Steal(ctx, 100, 200, 300, 4)

	assert.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, models.StealDeniedRateLimited, result.ReasonDenied)
	assert.InDelta(t, (90 * time.Minute).Seconds(), result.WaitRemaining.Seconds(), 5)

	mockBalanceRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRateLimitRepo.AssertNotCalled(t, "SetLast", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestTransferService_Steal_ZeroIntervalNeverGates(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockBalanceRepo, mockRateLimitRepo, mockSettingsRepo, _, mockHistoryRepo := newMockedUnitOfWork()

	service := NewTransferService(mockFactory, fixedResolver{outcome: true})

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockBalanceRepo.On("GetBalance", ctx, int64(100), int64(200)).Return(int64(10), nil)
	mockBalanceRepo.On("GetBalance", ctx, int64(300), int64(200)).Return(int64(10), nil)
	// Default steal interval is zero, so a steal from one second ago still passes
	mockSettingsRepo.On("GetSettings", ctx, int64(200)).Return(models.DefaultGuildSettings(200), nil)
	mockRateLimitRepo.On("GetLast", ctx, int64(100), int64(200), models.ActionSteal).
		Return(time.Now().UTC().Add(-time.Second), nil)

	mockBalanceRepo.On("ApplyDelta", ctx, int64(300), int64(200), int64(-4)).Return(int64(6), nil)
	mockBalanceRepo.On("ApplyDelta", ctx, int64(100), int64(200), int64(4)).Return(int64(14), nil)
	mockRateLimitRepo.On("SetLast", ctx, int64(100), int64(200), models.ActionSteal, mock.AnythingOfType("time.Time")).Return(time.Now().UTC(), nil)
	mockHistoryRepo.On("Record", ctx, mock.AnythingOfType("*models.BalanceHistory")).Return(nil).Twice()

	result, err := service.Steal(ctx, 100, 200, 300, 4)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
}
