package testutil

import (
	"pawbot/models"
)

// CreateTestHistory creates a balance history entry with default values
func CreateTestHistory(userID, guildID int64, transactionType models.TransactionType) *models.BalanceHistory {
	return &models.BalanceHistory{
		UserID:          userID,
		GuildID:         guildID,
		BalanceBefore:   10,
		BalanceAfter:    11,
		ChangeAmount:    1,
		TransactionType: transactionType,
		TransactionMetadata: map[string]any{
			"test": true,
		},
	}
}

// CreateTestHistoryWithAmounts creates a balance history entry with specific amounts
func CreateTestHistoryWithAmounts(userID, guildID, before, after int64, transactionType models.TransactionType) *models.BalanceHistory {
	history := CreateTestHistory(userID, guildID, transactionType)
	history.BalanceBefore = before
	history.BalanceAfter = after
	history.ChangeAmount = after - before
	return history
}
