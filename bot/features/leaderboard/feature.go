package leaderboard

import (
	"pawbot/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	leaderboardService service.LeaderboardService
	pageSize           int
}

func New(leaderboardService service.LeaderboardService, pageSize int) *Feature {
	return &Feature{
		leaderboardService: leaderboardService,
		pageSize:           pageSize,
	}
}

// HandleSubcommand routes paw subcommands owned by this feature
func (f *Feature) HandleSubcommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	if sub.Name == "top" {
		f.handleTop(s, i, sub)
	}
}
