package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	HTTP    HTTPConfig
	Log     LogConfig
	Redis   RedisConfig
	Archive ArchiveConfig
	DND5E   DND5EConfig
	Discord DiscordConfig
}

// HTTPConfig holds the web shell settings
type HTTPConfig struct {
	Addr           string   `env:"FORGE_HTTP_ADDR" envDefault:":8080"`
	AllowedOrigins []string `env:"FORGE_ALLOWED_ORIGINS" envSeparator:","`
}

// LogConfig selects the logrus level and formatter
type LogConfig struct {
	Level  string `env:"FORGE_LOG_LEVEL" envDefault:"info"`
	Format string `env:"FORGE_LOG_FORMAT" envDefault:"text"`
}

// RedisConfig holds Redis-specific configuration. Sessions stay in memory
// when URL is empty.
type RedisConfig struct {
	URL        string        `env:"REDIS_URL"`
	SessionTTL time.Duration `env:"FORGE_SESSION_TTL" envDefault:"24h"`
}

// ArchiveConfig locates the SQLite character archive. Characters stay in
// memory when Path is empty.
type ArchiveConfig struct {
	Path string `env:"FORGE_ARCHIVE_PATH"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Enabled bool          `env:"DND5E_ENABLED" envDefault:"false"`
	Timeout time.Duration `env:"DND5E_TIMEOUT" envDefault:"30s"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the fields the bot cannot run without
func (c DiscordConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}
