package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// UserName resolves a user ID to a username, preferring guild state over the
// REST API. Falls back to the raw ID when the user cannot be fetched.
func UserName(s *discordgo.Session, guildID, userID int64) string {
	idStr := strconv.FormatInt(userID, 10)

	if s.State != nil {
		member, err := s.State.Member(strconv.FormatInt(guildID, 10), idStr)
		if err == nil && member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(idStr)
	if err != nil {
		log.Debugf("Failed to fetch user %d: %v", userID, err)
		return idStr
	}
	return user.Username
}

// InteractionUser returns the invoking user for both guild and DM interactions
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// ParseSnowflake converts a Discord string ID to int64
func ParseSnowflake(id string) (int64, error) {
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", id, err)
	}
	return v, nil
}
