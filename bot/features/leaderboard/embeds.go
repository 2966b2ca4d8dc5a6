package leaderboard

import (
	"fmt"
	"strings"

	"pawbot/bot/common"
	"pawbot/models"

	"github.com/bwmarrin/discordgo"
)

// topEmbed renders one leaderboard page. Positions count from the top of the
// whole board, not the page, so page 2 starts at position 11.
func topEmbed(result *models.TopResult, pageSize int, callerName string, resolveName func(int64) string) *discordgo.MessageEmbed {
	var description strings.Builder
	description.WriteString(fmt.Sprintf("🐶 %d\n", result.TotalPaws))
	description.WriteString(fmt.Sprintf("👨‍🌾 %d\n\n", result.FarmerCount))
	description.WriteString("📈 Ranks 💪\n")

	if len(result.Entries) == 0 {
		description.WriteString("Page contains no farmers 🌵")
		return &discordgo.MessageEmbed{
			Title:       "🏆 Leaderboard 👑",
			Description: description.String(),
		}
	}

	for index, farmer := range result.Entries {
		position := (result.Page-1)*pageSize + index + 1

		switch position {
		case 1:
			description.WriteString("`` 🥇 ``")
		case 2:
			description.WriteString("`` 🥈 ``")
		case 3:
			description.WriteString("`` 🥉 ``")
		default:
			description.WriteString(fmt.Sprintf("`` %d ``", position))
		}

		description.WriteString(resolveName(farmer.UserID))
		description.WriteString(fmt.Sprintf(" - %d %s\n", farmer.Count, common.PawWord(farmer.Count)))
	}

	description.WriteString(fmt.Sprintf("``...`` %d other farmers\n", result.FarmerCount))
	description.WriteString(fmt.Sprintf("`` %d `` %s - %d %s",
		result.RequesterRank, callerName, result.RequesterBalance, common.PawWord(result.RequesterBalance)))

	return &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard 👑",
		Description: description.String(),
	}
}
