package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	SlackBotToken      string `env:"SLACK_BOT_TOKEN,required"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET,required"`
	DatabasePath       string `env:"DATABASE_PATH" envDefault:"./availability.db"`
	Port               string `env:"PORT" envDefault:"3000"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
