package main

import (
	"log/slog"
	"math/rand"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/console"
	"github.com/lazharichir/baccarat/events"
	"github.com/lazharichir/baccarat/table"
)

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Bacca", pterm.FgLightGreen.ToStyle()),
		putils.LettersFromStringWithStyle("rat", pterm.FgLightRed.ToStyle()),
	).Render()

	rules := table.Rules{
		DeckCount:      cfg.Decks,
		OpeningBalance: cfg.Balance,
		MinBet:         cfg.MinBet,
		MaxBet:         cfg.MaxBet,
		TiePayout:      cfg.TiePayout,
	}

	// A fixed seed replays the same shoe, handy for demos and bug reports
	var opts []cards.Option
	if cfg.Seed != 0 {
		opts = append(opts, cards.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}

	store := events.NewInMemoryEventStore()
	session, err := table.NewSession(rules, store, opts...)
	if err != nil {
		logger.Error("could not open the table", "error", err)
		os.Exit(1)
	}

	ui := console.New(session, cfg.Debug)
	if err := ui.Run(); err != nil {
		logger.Error("session ended with an error", "error", err)
		os.Exit(1)
	}
}
