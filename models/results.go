package models

import (
	"time"
)

// DailyResult is the outcome of a daily claim attempt
type DailyResult struct {
	Granted       bool
	NewBalance    int64
	WaitRemaining time.Duration // set when the claim was rate limited
}

// GambleResult is the outcome of a gamble attempt
type GambleResult struct {
	Allowed           bool
	Won               bool
	Stake             int64
	NewBalance        int64
	WaitRemaining     time.Duration
	InsufficientFunds bool
	InvalidStake      bool
}

// StealDenialReason explains why a steal attempt was refused
type StealDenialReason string

const (
	StealDeniedSelfTarget         StealDenialReason = "self_target"
	StealDeniedInvalidAmount      StealDenialReason = "invalid_amount"
	StealDeniedInsufficientCaller StealDenialReason = "insufficient_caller"
	StealDeniedInsufficientTarget StealDenialReason = "insufficient_target"
	StealDeniedRateLimited        StealDenialReason = "rate_limited"
)

// StealResult is the outcome of a steal attempt
type StealResult struct {
	Allowed          bool
	Won              bool
	Amount           int64
	NewCallerBalance int64
	NewTargetBalance int64
	ReasonDenied     StealDenialReason
	WaitRemaining    time.Duration // set when ReasonDenied is rate_limited
}

// GiveResult is the outcome of a donation attempt
type GiveResult struct {
	OK                bool
	Amount            int64
	NewCallerBalance  int64
	InsufficientFunds bool
	InvalidArgument   bool
}

// LeaderboardEntry is one row of a guild leaderboard page
type LeaderboardEntry struct {
	UserID int64 `db:"user_id"`
	Count  int64 `db:"count"`
}

// TopResult is one leaderboard page plus the guild-wide aggregates and the
// requesting user's own standing
type TopResult struct {
	Entries          []*LeaderboardEntry
	Page             int
	FarmerCount      int64
	TotalPaws        int64
	RequesterRank    int64 // 0 means unranked
	RequesterBalance int64
}
