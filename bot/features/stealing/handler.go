package stealing

import (
	"context"
	"fmt"

	"pawbot/bot/common"
	"pawbot/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleSteal(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var target *discordgo.User
	var count int64
	for _, opt := range sub.Options {
		switch opt.Name {
		case "who":
			target = opt.UserValue(s)
		case "count":
			count = opt.IntValue()
		}
	}
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	userID, err := common.ParseSnowflake(common.InteractionUser(i).ID)
	if err != nil {
		log.Errorf("Error parsing user ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
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

	result, err := f.transferService.Steal(ctx, userID, guildID, targetID, count)
	if err != nil {
		log.Errorf("Error processing steal from %d by %d: %v", targetID, userID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if !result.Allowed {
		switch result.ReasonDenied {
		case models.StealDeniedSelfTarget:
			common.RespondEphemeral(s, i, "You cannot steal from yourself")
		case models.StealDeniedInvalidAmount:
			common.RespondEphemeral(s, i, "You have to steal at least one paw!")
		case models.StealDeniedInsufficientCaller:
			common.RespondEphemeral(s, i, "You can only steal as many paws as you have!")
		case models.StealDeniedInsufficientTarget:
			common.RespondEphemeral(s, i, "That user doesnt have that many paws!")
		case models.StealDeniedRateLimited:
			common.RespondEphemeral(s, i, "🚫 🐶 stealing addiction is a serious problem. Regulations require a wait. Try again later...")
		default:
			common.RespondWithError(s, i, "Unable to process request. Please try again.")
		}
		return
	}

	common.RespondWithEmbed(s, i, stealEmbed(result, targetID))
}

func stealEmbed(result *models.StealResult, targetID int64) *discordgo.MessageEmbed {
	var description string
	if result.Won {
		description = fmt.Sprintf("Your thievery paid off, you stole %d %s from %s, giving you a total of %d %s.",
			result.Amount, common.PawWord(result.Amount), common.Mention(targetID),
			result.NewCallerBalance, common.PawWord(result.NewCallerBalance))
		description += common.DogTrail(result.NewCallerBalance) + "📈"
	} else {
		description = fmt.Sprintf("Your thievery sucked, you gave %d %s to %s, giving you a total of %d %s.",
			result.Amount, common.PawWord(result.Amount), common.Mention(targetID),
			result.NewCallerBalance, common.PawWord(result.NewCallerBalance))
		description += common.DogTrail(result.NewCallerBalance) + "📉"
	}

	return &discordgo.MessageEmbed{
		Title:       "🧤 🐶 🧤",
		Description: description,
	}
}

func (f *Feature) handleGive(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var target *discordgo.User
	var count int64
	for _, opt := range sub.Options {
		switch opt.Name {
		case "who":
			target = opt.UserValue(s)
		case "count":
			count = opt.IntValue()
		}
	}
	if target == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}

	userID, err := common.ParseSnowflake(common.InteractionUser(i).ID)
	if err != nil {
		log.Errorf("Error parsing user ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	targetID, err := common.ParseSnowflake(target.ID)
	if err != nil {
		log.Errorf("Error parsing recipient user ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.transferService.Give(ctx, userID, guildID, targetID, count)
	if err != nil {
		log.Errorf("Error processing donation from %d to %d: %v", userID, targetID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if !result.OK {
		if result.InvalidArgument && targetID == userID {
			common.RespondEphemeral(s, i, "You cannot donate to yourself")
		} else if result.InvalidArgument {
			common.RespondEphemeral(s, i, "You have to give at least one paw!")
		} else {
			common.RespondEphemeral(s, i, "You can only give as many paws as you have!")
		}
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("You gave %d %s to %s, how nice of you!",
		result.Amount, common.PawWord(result.Amount), common.Mention(targetID)))
}
