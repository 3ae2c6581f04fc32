package events

import (
	"time"

	"github.com/lazharichir/baccarat/cards"
)

// Round Flow Events
type RoundStarted struct {
	TableID string
	RoundID string
	At      time.Time
}

func (r RoundStarted) Name() string { return "ROUND_STARTED" }

type InitialHandsDealt struct {
	TableID     string
	RoundID     string
	PlayerCards cards.Stack
	BankCards   cards.Stack
	PlayerValue int
	BankValue   int
}

func (i InitialHandsDealt) Name() string { return "INITIAL_HANDS_DEALT" }

type NaturalDealt struct {
	TableID     string
	RoundID     string
	PlayerValue int
	BankValue   int
}

func (n NaturalDealt) Name() string { return "NATURAL_DEALT" }

type PlayerDrewThirdCard struct {
	TableID string
	RoundID string
	Card    cards.Card
	Value   int // hand value after the draw
}

func (p PlayerDrewThirdCard) Name() string { return "PLAYER_DREW_THIRD_CARD" }

type PlayerStood struct {
	TableID string
	RoundID string
	Value   int
}

func (p PlayerStood) Name() string { return "PLAYER_STOOD" }

type BankDrewThirdCard struct {
	TableID string
	RoundID string
	Card    cards.Card
	Value   int // hand value after the draw
}

func (b BankDrewThirdCard) Name() string { return "BANK_DREW_THIRD_CARD" }

type BankStood struct {
	TableID string
	RoundID string
	Value   int
}

func (b BankStood) Name() string { return "BANK_STOOD" }

type RoundEnded struct {
	TableID     string
	RoundID     string
	Outcome     string
	PlayerCards cards.Stack
	BankCards   cards.Stack
	PlayerValue int
	BankValue   int
	Natural     bool
}

func (r RoundEnded) Name() string { return "ROUND_ENDED" }

// Shoe Events
type ShoeRefilled struct {
	TableID   string
	DeckCount int
	CardCount int
}

func (s ShoeRefilled) Name() string { return "SHOE_REFILLED" }

// Betting Events
type BetPlaced struct {
	TableID string
	Wager   string
	Amount  int
	At      time.Time
}

func (b BetPlaced) Name() string { return "BET_PLACED" }

type BetSettled struct {
	TableID string
	RoundID string
	Wager   string
	Amount  int
	Outcome string
	Payout  int // net balance change: positive on a win, zero on a push
}

func (b BetSettled) Name() string { return "BET_SETTLED" }

type BalanceChanged struct {
	TableID string
	At      time.Time
	Before  int
	After   int
	Change  int
}

func (b BalanceChanged) Name() string { return "BALANCE_CHANGED" }
