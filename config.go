package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config holds the table settings read from the environment
type config struct {
	Decks     int   `env:"BACCARAT_DECKS" envDefault:"6"`
	Balance   int   `env:"BACCARAT_BALANCE" envDefault:"1000"`
	MinBet    int   `env:"BACCARAT_MIN_BET" envDefault:"10"`
	MaxBet    int   `env:"BACCARAT_MAX_BET" envDefault:"500"`
	TiePayout int   `env:"BACCARAT_TIE_PAYOUT" envDefault:"8"`
	Seed      int64 `env:"BACCARAT_SEED"`
	Debug     bool  `env:"BACCARAT_DEBUG"`
}

// loadConfig reads .env when present, then the process environment
func loadConfig() (config, error) {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
