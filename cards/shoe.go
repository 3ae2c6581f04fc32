package cards

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidDeckCount is returned when a shoe is built with fewer than one deck.
var ErrInvalidDeckCount = errors.New("invalid deck count")

// RefillHandler is notified whenever a shoe rebuilds its card pool
type RefillHandler func(deckCount, cardCount int)

// Option configures a shoe at construction time
type Option func(*Shoe)

// WithRand sets the source of randomness used to shuffle the shoe
func WithRand(r *rand.Rand) Option {
	return func(s *Shoe) {
		s.rng = r
	}
}

// Shoe represents multiple decks of cards shuffled together and dealt from
// the top. When the shoe runs out mid-deal it refills itself with fresh decks
type Shoe struct {
	deckCount int
	cards     Stack
	rng       *rand.Rand
	onRefill  []RefillHandler
}

// NewShoe creates a shuffled shoe holding deckCount decks of 52 cards
func NewShoe(deckCount int, opts ...Option) (*Shoe, error) {
	if deckCount < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDeckCount, deckCount)
	}

	shoe := &Shoe{
		deckCount: deckCount,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(shoe)
	}

	shoe.fill()
	return shoe, nil
}

// OnRefill registers a handler notified after every refill
func (s *Shoe) OnRefill(handler RefillHandler) {
	s.onRefill = append(s.onRefill, handler)
}

// Draw removes count cards from the top of the shoe. The shoe refills
// itself whenever it runs empty mid-draw, so the caller always receives
// exactly count cards
func (s *Shoe) Draw(count int) Stack {
	drawn := make(Stack, 0, count)
	for i := 0; i < count; i++ {
		if len(s.cards) == 0 {
			s.Refill()
		}
		drawn = append(drawn, s.cards.DealCard())
	}
	return drawn
}

// Refill discards whatever remains in the shoe, rebuilds the full pool of
// decks, reshuffles, and notifies the registered refill handlers
func (s *Shoe) Refill() {
	s.fill()
	for _, handler := range s.onRefill {
		handler(s.deckCount, len(s.cards))
	}
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// DeckCount returns the number of decks the shoe refills with
func (s *Shoe) DeckCount() int {
	return s.deckCount
}

func (s *Shoe) fill() {
	cards := make(Stack, 0, s.deckCount*52)
	for i := 0; i < s.deckCount; i++ {
		cards = append(cards, NewDeck52()...)
	}
	cards.Shuffle(s.rng)
	s.cards = cards
}
