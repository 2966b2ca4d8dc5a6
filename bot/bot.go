package bot

import (
	"fmt"

	"pawbot/bot/features/economy"
	"pawbot/bot/features/gambling"
	"pawbot/bot/features/leaderboard"
	"pawbot/bot/features/stealing"
	"pawbot/config"
	"pawbot/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Bot manages the Discord session and all feature modules
type Bot struct {
	cfg     *config.Config
	session *discordgo.Session

	economy     *economy.Feature
	gambling    *gambling.Feature
	stealing    *stealing.Feature
	leaderboard *leaderboard.Feature
}

// New creates a bot instance, opens the gateway connection and registers
// the paw command.
func New(
	cfg *config.Config,
	economyService service.EconomyService,
	gamblingService service.GamblingService,
	transferService service.TransferService,
	leaderboardService service.LeaderboardService,
) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	bot := &Bot{
		cfg:         cfg,
		session:     dg,
		economy:     economy.New(economyService),
		gambling:    gambling.New(gamblingService),
		stealing:    stealing.New(transferService),
		leaderboard: leaderboard.New(leaderboardService, cfg.LeaderboardPageSize),
	}

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleReady)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"username": r.User.Username,
		"guilds":   len(r.Guilds),
	}).Info("Bot connected to Discord")
}

// handleCommands routes paw subcommands to the owning feature
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != "paw" || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	switch sub.Name {
	case "daily", "balance":
		b.economy.HandleSubcommand(s, i, sub)
	case "gamble":
		b.gambling.HandleSubcommand(s, i, sub)
	case "steal", "give":
		b.stealing.HandleSubcommand(s, i, sub)
	case "top":
		b.leaderboard.HandleSubcommand(s, i, sub)
	}
}
