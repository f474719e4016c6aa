package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Help modes: how the bot answers with usage/help text.
const (
	HelpDisabled = "disabled"
	HelpPublic   = "public"
	HelpPrivate  = "private"
)

// Config is the runtime configuration, loaded from .env and the environment.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	// Triggers are the recognized command-trigger characters. Empty makes
	// every message a routing candidate.
	Triggers string `env:"COMMAND_TRIGGERS" envDefault:"!"`
	HelpMode string `env:"HELP_MODE" envDefault:"public"`
	// AdminRule gates admin-only commands; see internal/rules.
	AdminRule string `env:"ADMIN_RULE" envDefault:"actor.admin"`

	StoragePath string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"LOG_FILE"`
	LogFileMaxMB int    `env:"LOG_FILE_MAX_MB" envDefault:"10"`
}

// New loads .env when present and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.HelpMode {
	case HelpDisabled, HelpPublic, HelpPrivate:
	default:
		return nil, fmt.Errorf("invalid HELP_MODE %q", cfg.HelpMode)
	}

	return cfg, nil
}
