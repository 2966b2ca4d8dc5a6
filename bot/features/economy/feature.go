package economy

import (
	"pawbot/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	economyService service.EconomyService
}

func New(economyService service.EconomyService) *Feature {
	return &Feature{
		economyService: economyService,
	}
}

// HandleSubcommand routes paw subcommands owned by this feature
func (f *Feature) HandleSubcommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	switch sub.Name {
	case "daily":
		f.handleDaily(s, i)
	case "balance":
		f.handleBalance(s, i, sub)
	}
}
