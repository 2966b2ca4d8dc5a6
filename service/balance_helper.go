package service

import (
	"context"
	"fmt"

	"pawbot/events"
	"pawbot/models"
)

// RecordBalanceChange records a balance history entry and publishes the
// balance change event. This is the single entry point for all balance
// changes in the system; the event is flushed only if the surrounding
// transaction commits.
func RecordBalanceChange(ctx context.Context, uow UnitOfWork, history *models.BalanceHistory) error {
	if err := uow.BalanceHistoryRepository().Record(ctx, history); err != nil {
		return fmt.Errorf("failed to record balance history: %w", err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:          history.UserID,
		GuildID:         history.GuildID,
		OldBalance:      history.BalanceBefore,
		NewBalance:      history.BalanceAfter,
		ChangeAmount:    history.ChangeAmount,
		TransactionType: history.TransactionType,
	})

	return nil
}
