package models

import (
	"time"
)

// GuildSettings holds per-guild action tuning. Rows are provisioned outside
// the bot; guilds without a row use the defaults below.
type GuildSettings struct {
	GuildID        int64    `db:"guild_id"`
	StealInterval  Interval `db:"steal_interval"`
	GambleInterval Interval `db:"gamble_interval"`
	StealChance    int      `db:"steal_chance"`
	GambleChance   int      `db:"gamble_chance"`
}

// DefaultGuildSettings returns the settings used when a guild has no row:
// no steal cool-down, 10 minute gamble cool-down, 50/50 odds.
func DefaultGuildSettings(guildID int64) *GuildSettings {
	return &GuildSettings{
		GuildID:        guildID,
		StealInterval:  0,
		GambleInterval: Interval(10 * time.Minute),
		StealChance:    50,
		GambleChance:   50,
	}
}
