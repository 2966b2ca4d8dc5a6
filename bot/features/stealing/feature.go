package stealing

import (
	"pawbot/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	transferService service.TransferService
}

func New(transferService service.TransferService) *Feature {
	return &Feature{
		transferService: transferService,
	}
}

// HandleSubcommand routes paw subcommands owned by this feature
func (f *Feature) HandleSubcommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	switch sub.Name {
	case "steal":
		f.handleSteal(s, i, sub)
	case "give":
		f.handleGive(s, i, sub)
	}
}
