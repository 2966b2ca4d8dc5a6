package cmd

import (
	"context"
	"fmt"
	"time"

	"pawbot/bot"
	"pawbot/config"
	"pawbot/database"
	"pawbot/events"
	"pawbot/repository"
	"pawbot/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	configureLogging(cfg)

	log.Info("Starting paw bot...")

	db, err := database.NewConnection(ctx, cfg.FullDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	eventBus := events.NewBus()
	subscribeEventLogging(eventBus)

	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)
	resolver := service.NewOutcomeResolver()

	economyService := service.NewEconomyService(uowFactory, cfg)
	gamblingService := service.NewGamblingService(uowFactory, resolver, cfg)
	transferService := service.NewTransferService(uowFactory, resolver)
	leaderboardService := service.NewLeaderboardService(uowFactory, cfg)

	discordBot, err := bot.New(cfg, economyService, gamblingService, transferService, leaderboardService)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Infof("Bot is running in %s mode", cfg.Environment)

	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}

func configureLogging(cfg *config.Config) {
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetLevel(log.DebugLevel)
}

// subscribeEventLogging attaches observability handlers to the event bus so
// every committed economy action leaves a structured log line.
func subscribeEventLogging(bus *events.Bus) {
	bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, e events.Event) {
		if ev, ok := e.(events.BalanceChangeEvent); ok {
			log.WithFields(log.Fields{
				"user_id":  ev.UserID,
				"guild_id": ev.GuildID,
				"old":      ev.OldBalance,
				"new":      ev.NewBalance,
				"change":   ev.ChangeAmount,
				"type":     ev.TransactionType,
			}).Info("Balance changed")
		}
	})

	bus.Subscribe(events.EventTypeDailyClaimed, func(ctx context.Context, e events.Event) {
		if ev, ok := e.(events.DailyClaimedEvent); ok {
			log.WithFields(log.Fields{
				"user_id":  ev.UserID,
				"guild_id": ev.GuildID,
				"amount":   ev.Amount,
			}).Info("Daily paw claimed")
		}
	})

	bus.Subscribe(events.EventTypeGambleResolved, func(ctx context.Context, e events.Event) {
		if ev, ok := e.(events.GambleResolvedEvent); ok {
			log.WithFields(log.Fields{
				"user_id":  ev.UserID,
				"guild_id": ev.GuildID,
				"stake":    ev.Stake,
				"won":      ev.Won,
			}).Info("Gamble resolved")
		}
	})

	bus.Subscribe(events.EventTypeStealResolved, func(ctx context.Context, e events.Event) {
		if ev, ok := e.(events.StealResolvedEvent); ok {
			log.WithFields(log.Fields{
				"caller_id": ev.CallerID,
				"target_id": ev.TargetID,
				"guild_id":  ev.GuildID,
				"amount":    ev.Amount,
				"won":       ev.Won,
			}).Info("Steal resolved")
		}
	})
}
