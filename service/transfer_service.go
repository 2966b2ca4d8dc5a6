package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawbot/events"
	"pawbot/models"
)

type transferService struct {
	uowFactory UnitOfWorkFactory
	resolver   OutcomeResolver
}

// NewTransferService creates a new transfer service
func NewTransferService(uowFactory UnitOfWorkFactory, resolver OutcomeResolver) TransferService {
	return &transferService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Give donates paws from caller to target. Debit and credit run inside one
// transaction, so a failure between them can never strand paws; the debit
// relies on the ledger's atomic conditional mutation rather than a
// read-then-write check.
func (s *transferService) Give(ctx context.Context, userID, guildID, targetID, amount int64) (*models.GiveResult, error) {
	if targetID == userID || amount <= 0 {
		return &models.GiveResult{
			OK:              false,
			Amount:          amount,
			InvalidArgument: true,
		}, nil
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	callerBalance, err := uow.BalanceRepository().GetBalance(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get caller balance: %w", err)
	}
	targetBalance, err := uow.BalanceRepository().GetBalance(ctx, targetID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get target balance: %w", err)
	}

	newCallerBalance, err := uow.BalanceRepository().ApplyDelta(ctx, userID, guildID, -amount)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientBalance) {
			return &models.GiveResult{
				OK:                false,
				Amount:            amount,
				InsufficientFunds: true,
			}, nil
		}
		return nil, fmt.Errorf("failed to debit caller: %w", err)
	}

	newTargetBalance, err := uow.BalanceRepository().ApplyDelta(ctx, targetID, guildID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to credit target: %w", err)
	}

	outHistory := &models.BalanceHistory{
		UserID:          userID,
		GuildID:         guildID,
		BalanceBefore:   callerBalance,
		BalanceAfter:    newCallerBalance,
		ChangeAmount:    -amount,
		TransactionType: models.TransactionTypeGiveOut,
		TransactionMetadata: map[string]any{
			"recipient_user_id": targetID,
			"give_amount":       amount,
		},
	}
	if err := RecordBalanceChange(ctx, uow, outHistory); err != nil {
		return nil, fmt.Errorf("failed to record caller balance change: %w", err)
	}

	inHistory := &models.BalanceHistory{
		UserID:          targetID,
		GuildID:         guildID,
		BalanceBefore:   targetBalance,
		BalanceAfter:    newTargetBalance,
		ChangeAmount:    amount,
		TransactionType: models.TransactionTypeGiveIn,
		TransactionMetadata: map[string]any{
			"sender_user_id": userID,
			"give_amount":    amount,
		},
	}
	if err := RecordBalanceChange(ctx, uow, inHistory); err != nil {
		return nil, fmt.Errorf("failed to record target balance change: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.GiveResult{
		OK:               true,
		Amount:           amount,
		NewCallerBalance: newCallerBalance,
	}, nil
}

// Steal attempts to take paws from target. A won draw moves amount from
// target to caller, a lost draw forfeits the same amount from caller to
// target. Both row mutations and the timestamp write share one transaction.
func (s *transferService) Steal(ctx context.Context, userID, guildID, targetID, amount int64) (*models.StealResult, error) {
	if targetID == userID {
		return &models.StealResult{
			Allowed:      false,
			Amount:       amount,
			ReasonDenied: models.StealDeniedSelfTarget,
		}, nil
	}
	if amount <= 0 {
		return &models.StealResult{
			Allowed:      false,
			Amount:       amount,
			ReasonDenied: models.StealDeniedInvalidAmount,
		}, nil
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	// The caller stakes the same amount they try to take, so both sides need
	// the full amount up front
	callerBalance, err := uow.BalanceRepository().GetBalance(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get caller balance: %w", err)
	}
	if callerBalance < amount {
		return &models.StealResult{
			Allowed:      false,
			Amount:       amount,
			ReasonDenied: models.StealDeniedInsufficientCaller,
		}, nil
	}

	targetBalance, err := uow.BalanceRepository().GetBalance(ctx, targetID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get target balance: %w", err)
	}
	if targetBalance < amount {
		return &models.StealResult{
			Allowed:      false,
			Amount:       amount,
			ReasonDenied: models.StealDeniedInsufficientTarget,
		}, nil
	}

	settings, err := uow.GuildSettingsRepository().GetSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	last, err := uow.RateLimitRepository().GetLast(ctx, userID, guildID, models.ActionSteal)
	if err != nil {
		return nil, fmt.Errorf("failed to get last steal: %w", err)
	}

	now := time.Now().UTC()
	elapsed := now.Sub(last)
	if elapsed < settings.StealInterval.Duration() {
		return &models.StealResult{
			Allowed:       false,
			Amount:        amount,
			ReasonDenied:  models.StealDeniedRateLimited,
			WaitRemaining: settings.StealInterval.Duration() - elapsed,
		}, nil
	}

	won := s.resolver.Resolve(settings.StealChance)

	// Debit first: if a concurrent action drained the debited account since
	// the pre-check, the constraint fires here and the whole attempt rolls
	// back as a denial
	var newCallerBalance, newTargetBalance int64
	if won {
		newTargetBalance, err = uow.BalanceRepository().ApplyDelta(ctx, targetID, guildID, -amount)
		if err != nil {
			if errors.Is(err, models.ErrInsufficientBalance) {
				return &models.StealResult{
					Allowed:      false,
					Amount:       amount,
					ReasonDenied: models.StealDeniedInsufficientTarget,
				}, nil
			}
			return nil, fmt.Errorf("failed to debit target: %w", err)
		}
		newCallerBalance, err = uow.BalanceRepository().ApplyDelta(ctx, userID, guildID, amount)
		if err != nil {
			return nil, fmt.Errorf("failed to credit caller: %w", err)
		}
	} else {
		newCallerBalance, err = uow.BalanceRepository().ApplyDelta(ctx, userID, guildID, -amount)
		if err != nil {
			if errors.Is(err, models.ErrInsufficientBalance) {
				return &models.StealResult{
					Allowed:      false,
					Amount:       amount,
					ReasonDenied: models.StealDeniedInsufficientCaller,
				}, nil
			}
			return nil, fmt.Errorf("failed to debit caller: %w", err)
		}
		newTargetBalance, err = uow.BalanceRepository().ApplyDelta(ctx, targetID, guildID, amount)
		if err != nil {
			return nil, fmt.Errorf("failed to credit target: %w", err)
		}
	}

	if _, err := uow.RateLimitRepository().SetLast(ctx, userID, guildID, models.ActionSteal, now); err != nil {
		return nil, fmt.Errorf("failed to set last steal: %w", err)
	}

	callerType := models.TransactionTypeStealWin
	targetType := models.TransactionTypeStealLoss
	callerChange := amount
	if !won {
		callerType = models.TransactionTypeStealLoss
		targetType = models.TransactionTypeStealWin
		callerChange = -amount
	}

	callerHistory := &models.BalanceHistory{
		UserID:          userID,
		GuildID:         guildID,
		BalanceBefore:   callerBalance,
		BalanceAfter:    newCallerBalance,
		ChangeAmount:    callerChange,
		TransactionType: callerType,
		TransactionMetadata: map[string]any{
			"target_user_id": targetID,
			"steal_amount":   amount,
			"won":            won,
		},
	}
	if err := RecordBalanceChange(ctx, uow, callerHistory); err != nil {
		return nil, fmt.Errorf("failed to record caller balance change: %w", err)
	}

	targetHistory := &models.BalanceHistory{
		UserID:          targetID,
		GuildID:         guildID,
		BalanceBefore:   targetBalance,
		BalanceAfter:    newTargetBalance,
		ChangeAmount:    -callerChange,
		TransactionType: targetType,
		TransactionMetadata: map[string]any{
			"caller_user_id": userID,
			"steal_amount":   amount,
			"won":            won,
		},
	}
	if err := RecordBalanceChange(ctx, uow, targetHistory); err != nil {
		return nil, fmt.Errorf("failed to record target balance change: %w", err)
	}

	uow.EventBus().Publish(events.StealResolvedEvent{
		CallerID: userID,
		TargetID: targetID,
		GuildID:  guildID,
		Amount:   amount,
		Won:      won,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.StealResult{
		Allowed:          true,
		Won:              won,
		Amount:           amount,
		NewCallerBalance: newCallerBalance,
		NewTargetBalance: newTargetBalance,
	}, nil
}
