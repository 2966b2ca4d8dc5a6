package gambling

import (
	"context"
	"fmt"

	"pawbot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleGamble(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var stake int64
	for _, opt := range sub.Options {
		if opt.Name == "stake" {
			stake = opt.IntValue()
		}
	}

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

	result, err := f.gamblingService.Gamble(ctx, userID, guildID, stake)
	if err != nil {
		log.Errorf("Error processing gamble for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if !result.Allowed {
		switch {
		case result.InvalidStake, result.InsufficientFunds:
			common.RespondEphemeral(s, i, "You can only gamble as many paws as you have! (up to 10)")
		default:
			common.RespondEphemeral(s, i, "🚫 🐶 gambling addiction is a serious problem. Regulations require a wait. Try again later...")
		}
		return
	}

	common.RespondWithEmbed(s, i, gambleEmbed(result.Won, result.Stake, result.NewBalance))
}

func gambleEmbed(won bool, stake, newBalance int64) *discordgo.MessageEmbed {
	var description string
	if won {
		description = fmt.Sprintf("Your gambling paid off, you won %d %s, giving you a total of %d %s.",
			stake, common.PawWord(stake), newBalance, common.PawWord(newBalance))
		description += common.DogTrail(newBalance) + "📈"
	} else {
		description = fmt.Sprintf("Your gambling sucked, you lost %d %s, giving you a total of %d %s.",
			stake, common.PawWord(stake), newBalance, common.PawWord(newBalance))
		description += common.DogTrail(newBalance) + "📉"
	}

	return &discordgo.MessageEmbed{
		Title:       "🎲 🐶 🎲",
		Description: description,
	}
}
