package leaderboard

import (
	"context"

	"pawbot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleTop(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	page := 1
	for _, opt := range sub.Options {
		if opt.Name == "page" {
			page = int(opt.IntValue())
		}
	}

	caller := common.InteractionUser(i)
	userID, err := common.ParseSnowflake(caller.ID)
	if err != nil {
		log.Errorf("Error parsing user ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.leaderboardService.Top(ctx, guildID, page, userID)
	if err != nil {
		log.Errorf("Error fetching leaderboard for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	resolve := func(id int64) string {
		return common.UserName(s, guildID, id)
	}
	common.RespondWithEmbed(s, i, topEmbed(result, f.pageSize, caller.Username, resolve))
}
