package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken  string
	GuildID       string
	AdminRoleName string
	CommandPrefix string
	TasksFile     string
	Logger        LoggerConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// ErrMissingToken is the only process-fatal configuration condition.
var ErrMissingToken = errors.New("config: DISCORD_TOKEN is required")

// Load reads configuration from the environment (optionally .env) and
// applies defaults for everything except the bot token.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		GuildID:       os.Getenv("GUILD_ID"),
		AdminRoleName: getString("ADMIN_ROLE_NAME", "Admin"),
		CommandPrefix: getString("COMMAND_PREFIX", "!"),
		TasksFile:     getString("TASKS_FILE", "tasks.json"),
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	if cfg.DiscordToken == "" {
		return nil, ErrMissingToken
	}
	if cfg.GuildID == "0" {
		cfg.GuildID = ""
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
