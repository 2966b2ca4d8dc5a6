package economy

import (
	"context"
	"fmt"

	"pawbot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.ParseSnowflake(common.InteractionUser(i).ID)
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

	result, err := f.economyService.Daily(ctx, userID, guildID)
	if err != nil {
		log.Errorf("Error processing daily claim for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if !result.Granted {
		common.RespondEphemeral(s, i, fmt.Sprintf(
			"You already claimed your daily paw! (Wait %s)",
			common.FormatTimeLeft(result.WaitRemaining)))
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf(
		"You claimed your daily paw, and now hold onto %d %s!",
		result.NewBalance, common.PawWord(result.NewBalance)))
}

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	// Defaults to the caller when no user option is given
	target := common.InteractionUser(i)
	for _, opt := range sub.Options {
		if opt.Name == "who" {
			target = opt.UserValue(s)
		}
	}

	targetID, err := common.ParseSnowflake(target.ID)
	if err != nil {
		log.Errorf("Error parsing target user ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	balance, err := f.economyService.Balance(ctx, targetID, guildID)
	if err != nil {
		log.Errorf("Error fetching balance for user %d: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🐶 paw count 🐶",
		Description: fmt.Sprintf("%s has %d %s.", common.Mention(targetID), balance, common.PawWord(balance)),
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: target.AvatarURL("")},
	}
	common.RespondWithEmbed(s, i, embed)
}
