// Package config loads runtime configuration from the environment.
// A .env file is honored when present so local runs need no exports.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries presentation-layer settings. The game core takes no
// configuration at all; colors and names exist only for whatever is
// rendering the board.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Player1Name  string `env:"PLAYER1_NAME" envDefault:"Player 1"`
	Player2Name  string `env:"PLAYER2_NAME" envDefault:"Player 2"`
	Player1Color string `env:"PLAYER1_COLOR" envDefault:"red"`
	Player2Color string `env:"PLAYER2_COLOR" envDefault:"yellow"`

	BotDifficulty string `env:"BOT_DIFFICULTY" envDefault:"easy"`

	SessionPruneAge time.Duration `env:"SESSION_PRUNE_AGE" envDefault:"30m"`
}

// Load reads .env (if any) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
