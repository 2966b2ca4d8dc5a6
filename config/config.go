package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"pawbot/database"
	"pawbot/models"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Economy configuration
	DailyAmount         int64         // Paws granted per daily claim
	DailyInterval       time.Duration // Cool-down between daily claims
	MaxGambleStake      int64         // Upper bound on a gamble stake
	LeaderboardPageSize int           // Entries per leaderboard page

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables, reading a .env file
// first when one is present
func load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Economy settings with defaults
		DailyAmount:         1,
		DailyInterval:       24 * time.Hour,
		MaxGambleStake:      10,
		LeaderboardPageSize: 10,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if amount := os.Getenv("DAILY_AMOUNT"); amount != "" {
		parsed, err := strconv.ParseInt(amount, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid DAILY_AMOUNT %q", amount)
		}
		config.DailyAmount = parsed
	}
	if interval := os.Getenv("DAILY_INTERVAL"); interval != "" {
		parsed, err := models.ParseInterval(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid DAILY_INTERVAL: %w", err)
		}
		config.DailyInterval = parsed.Duration()
	}
	if stake := os.Getenv("MAX_GAMBLE_STAKE"); stake != "" {
		parsed, err := strconv.ParseInt(stake, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid MAX_GAMBLE_STAKE %q", stake)
		}
		config.MaxGambleStake = parsed
	}
	if size := os.Getenv("LEADERBOARD_PAGE_SIZE"); size != "" {
		parsed, err := strconv.Atoi(size)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid LEADERBOARD_PAGE_SIZE %q", size)
		}
		config.LeaderboardPageSize = parsed
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

// FullDatabaseURL returns the connection URL with DATABASE_NAME applied
func (c *Config) FullDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}
