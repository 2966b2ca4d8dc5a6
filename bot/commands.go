package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers the paw command tree with Discord. When a guild
// ID is configured the command is scoped to that guild, which makes it
// available immediately instead of after global propagation.
func (b *Bot) registerCommands() error {
	var minCount float64 = 1

	command := &discordgo.ApplicationCommand{
		Name:        "paw",
		Description: "Collect, gamble, steal and donate paws",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "daily",
				Description: "Claims your daily paw drop",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "balance",
				Description: "tells you how many paws you have",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "who",
						Description: "(optional) member to check the balance of",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "gamble",
				Description: "Test your odds",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "stake",
						Description: "How many paws to put on the line",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "steal",
				Description: "If you're lucky, you might be able to steal some.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "who",
						Description: "User to steal from",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "count",
						Description: "How many paws to try to take",
						Required:    true,
						MinValue:    &minCount,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "give",
				Description: "Donate paws to others",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "who",
						Description: "User to donate to",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "count",
						Description: "How many paws to give",
						Required:    true,
						MinValue:    &minCount,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "top",
				Description: "Take a gander at the paw leaderboard",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "page",
						Description: "(optional) page number",
						Required:    false,
					},
				},
			},
		},
	}

	_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.cfg.DiscordGuildID, command)
	if err != nil {
		return fmt.Errorf("cannot create '%s' command: %w", command.Name, err)
	}

	return nil
}
