package models

import (
	"time"
)

// TransactionType represents the kind of balance change
type TransactionType string

const (
	TransactionTypeDaily      TransactionType = "daily"
	TransactionTypeGambleWin  TransactionType = "gamble_win"
	TransactionTypeGambleLoss TransactionType = "gamble_loss"
	TransactionTypeStealWin   TransactionType = "steal_win"
	TransactionTypeStealLoss  TransactionType = "steal_loss"
	TransactionTypeGiveIn     TransactionType = "give_in"
	TransactionTypeGiveOut    TransactionType = "give_out"
)

// BalanceHistory represents a historical balance change for audit purposes
type BalanceHistory struct {
	ID                  int64           `db:"id"`
	UserID              int64           `db:"user_id"`
	GuildID             int64           `db:"guild_id"`
	BalanceBefore       int64           `db:"balance_before"`
	BalanceAfter        int64           `db:"balance_after"`
	ChangeAmount        int64           `db:"change_amount"`
	TransactionType     TransactionType `db:"transaction_type"`
	TransactionMetadata map[string]any  `db:"transaction_metadata"`
	CreatedAt           time.Time       `db:"created_at"`
}
