package table

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lazharichir/baccarat/baccarat"
	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/events"
)

// Wager identifies the side a bet backs
type Wager string

const (
	WagerPlayer Wager = "player"
	WagerBank   Wager = "bank"
	WagerTie    Wager = "tie"
)

var (
	ErrUnknownWager      = errors.New("unknown wager")
	ErrInvalidBetAmount  = errors.New("invalid bet amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBetAlreadyPlaced  = errors.New("bet already placed")
	ErrNoBetPlaced       = errors.New("no bet placed")
)

// Rules defines the table configuration for a session
type Rules struct {
	DeckCount      int
	OpeningBalance int
	MinBet         int
	MaxBet         int // zero means no limit
	TiePayout      int
}

// Bet is a staged wager on the next round
type Bet struct {
	Wager  Wager
	Amount int
}

// Session is a single-seat baccarat table: one shoe, one bankroll, rounds
// dealt on demand. A session is not safe for concurrent use
type Session struct {
	ID      string
	rules   Rules
	shoe    *cards.Shoe
	balance int
	bet     *Bet
	rounds  int

	// events
	eventStore    events.EventStore
	eventHandlers []events.EventHandler
}

// NewSession creates a session with a fresh shoe and the opening balance
func NewSession(rules Rules, store events.EventStore, opts ...cards.Option) (*Session, error) {
	shoe, err := cards.NewShoe(rules.DeckCount, opts...)
	if err != nil {
		return nil, fmt.Errorf("new shoe: %w", err)
	}

	session := &Session{
		ID:         uuid.NewString(),
		rules:      rules,
		shoe:       shoe,
		balance:    rules.OpeningBalance,
		eventStore: store,
	}

	session.shoe.OnRefill(func(deckCount, cardCount int) {
		session.emitEvent(events.ShoeRefilled{
			TableID:   session.ID,
			DeckCount: deckCount,
			CardCount: cardCount,
		})
	})

	return session, nil
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (s *Session) RegisterEventHandler(handler events.EventHandler) {
	s.eventHandlers = append(s.eventHandlers, handler)
}

// emitEvent stores the event and notifies all registered handlers
func (s *Session) emitEvent(event events.Event) {
	if s.eventStore != nil {
		s.eventStore.Append(event)
	}

	for _, handler := range s.eventHandlers {
		handler(event)
	}
}

// PlaceBet stages a wager on the next round
func (s *Session) PlaceBet(wager Wager, amount int) error {
	if s.bet != nil {
		return ErrBetAlreadyPlaced
	}

	switch wager {
	case WagerPlayer, WagerBank, WagerTie:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWager, string(wager))
	}

	if amount <= 0 || amount < s.rules.MinBet {
		return fmt.Errorf("%w: %d", ErrInvalidBetAmount, amount)
	}
	if s.rules.MaxBet > 0 && amount > s.rules.MaxBet {
		return fmt.Errorf("%w: %d", ErrInvalidBetAmount, amount)
	}
	if amount > s.balance {
		return fmt.Errorf("%w: balance %d, bet %d", ErrInsufficientFunds, s.balance, amount)
	}

	s.bet = &Bet{Wager: wager, Amount: amount}
	s.emitEvent(events.BetPlaced{
		TableID: s.ID,
		Wager:   string(wager),
		Amount:  amount,
		At:      time.Now(),
	})

	return nil
}

// Play deals one round from the shoe and settles the staged bet
func (s *Session) Play() (Round, error) {
	if s.bet == nil {
		return Round{}, ErrNoBetPlaced
	}

	round := PlayRound(s.ID, s.shoe, s.emitEvent)
	s.rounds++
	s.settle(round)

	return round, nil
}

// settle pays out the staged bet against the round outcome
func (s *Session) settle(round Round) {
	bet := *s.bet
	s.bet = nil

	payout := s.payout(bet, round.Outcome)
	if payout != 0 {
		s.adjustBalance(payout)
	}

	s.emitEvent(events.BetSettled{
		TableID: s.ID,
		RoundID: round.ID,
		Wager:   string(bet.Wager),
		Amount:  bet.Amount,
		Outcome: string(round.Outcome),
		Payout:  payout,
	})
}

// payout returns the net balance change for a settled bet. Player and bank
// bets pay even money and push on a tie; tie bets pay TiePayout to one
func (s *Session) payout(bet Bet, outcome baccarat.Outcome) int {
	if outcome == baccarat.OutcomeTie {
		if bet.Wager == WagerTie {
			return bet.Amount * s.rules.TiePayout
		}
		return 0
	}

	won := (bet.Wager == WagerPlayer && outcome == baccarat.OutcomePlayer) ||
		(bet.Wager == WagerBank && outcome == baccarat.OutcomeBank)
	if won {
		return bet.Amount
	}
	return -bet.Amount
}

func (s *Session) adjustBalance(change int) {
	before := s.balance
	s.balance += change
	after := s.balance

	s.emitEvent(events.BalanceChanged{
		TableID: s.ID,
		At:      time.Now(),
		Before:  before,
		After:   after,
		Change:  after - before,
	})
}

// Balance returns the bankroll available for betting
func (s *Session) Balance() int {
	return s.balance
}

// CurrentBet returns a copy of the staged bet, or nil when none is staged
func (s *Session) CurrentBet() *Bet {
	if s.bet == nil {
		return nil
	}
	bet := *s.bet
	return &bet
}

// CardsInShoe returns the number of cards left in the shoe
func (s *Session) CardsInShoe() int {
	return s.shoe.Remaining()
}

// RoundsPlayed returns the number of rounds dealt so far
func (s *Session) RoundsPlayed() int {
	return s.rounds
}

// CanBet reports whether the bankroll still covers the table minimum
func (s *Session) CanBet() bool {
	return s.balance > 0 && s.balance >= s.rules.MinBet
}

// Rules returns the table configuration
func (s *Session) Rules() Rules {
	return s.rules
}
