package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Discord
	DiscordToken string `validate:"required"`
	DiscordAppID string `validate:"required"`

	// Channel gating
	ShopChannelID   string
	CommandChannels []string
	PointsChannelID string

	// HTTP (health + metrics)
	Port int `validate:"gt=0,lte=65535"`

	// Logging
	LogLevel  string
	LogFormat string

	// Database
	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBName     string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:    getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:    getEnv("DISCORD_APP_ID", ""),
		ShopChannelID:   getEnv("SHOP_CHANNEL_ID", ""),
		CommandChannels: splitList(getEnv("COMMAND_CHANNELS", "")),
		PointsChannelID: getEnv("POINTS_CHANNEL_ID", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "guildcoin"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration invalid: %w", err)
	}

	return cfg, nil
}

// Warnings reports non-fatal configuration gaps. The bot still starts, but
// the affected feature stays inactive until the variable is set.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.ShopChannelID == "" {
		warnings = append(warnings, "SHOP_CHANNEL_ID not set; the shop command will be rejected everywhere")
	}
	if len(c.CommandChannels) == 0 {
		warnings = append(warnings, "COMMAND_CHANNELS not set; balance and daily commands will be rejected everywhere")
	}
	if c.PointsChannelID == "" {
		warnings = append(warnings, "POINTS_CHANNEL_ID not set; message activity will not earn coins")
	}
	return warnings
}

// IsCommandChannel reports whether channelID is in the command allow-list.
func (c *Config) IsCommandChannel(channelID string) bool {
	for _, id := range c.CommandChannels {
		if id == channelID {
			return true
		}
	}
	return false
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
