package cards

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCard is returned when a rank or suit falls outside the deck.
var ErrInvalidCard = errors.New("invalid card")

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Rank: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: shorthand too short: %q", ErrInvalidCard, s)
	}

	// The suit is the last rune, which may be a multi-byte glyph
	last, size := utf8.DecodeLastRuneInString(s)

	var suit Suit
	switch string(last) {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, string(last))
	}

	var rank Rank
	switch strings.ToUpper(s[:len(s)-size]) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s[:len(s)-1])
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Valid reports whether the suit is one of the four deck suits
func (s Suit) Valid() bool {
	switch s {
	case Spades, Hearts, Diamonds, Clubs:
		return true
	}
	return false
}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	King  Rank = "K"
	Queen Rank = "Q"
	Jack  Rank = "J"
	Ten   Rank = "10"
	Nine  Rank = "9"
	Eight Rank = "8"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// Valid reports whether the rank is one of the thirteen deck ranks
func (r Rank) Valid() bool {
	switch r {
	case Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two:
		return true
	}
	return false
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card, rejecting ranks or suits outside the deck
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, string(rank))
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, string(suit))
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Value returns the baccarat value of the card: aces count one, tens and
// face cards count zero, every other rank counts its pips
func (c Card) Value() int {
	switch c.Rank {
	case Ace:
		return 1
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	default:
		return 0
	}
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}
