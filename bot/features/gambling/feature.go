package gambling

import (
	"pawbot/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	gamblingService service.GamblingService
}

func New(gamblingService service.GamblingService) *Feature {
	return &Feature{
		gamblingService: gamblingService,
	}
}

// HandleSubcommand routes paw subcommands owned by this feature
func (f *Feature) HandleSubcommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	if sub.Name == "gamble" {
		f.handleGamble(s, i, sub)
	}
}
