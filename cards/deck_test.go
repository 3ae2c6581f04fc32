package cards

import (
	"testing"
)

func TestNewDeck52(t *testing.T) {
	deck := NewDeck52()

	if len(deck) != 52 {
		t.Errorf("Expected deck to have 52 cards, got %d", len(deck))
	}

	seen := make(map[Card]bool, len(deck))
	for _, card := range deck {
		if seen[card] {
			t.Errorf("Card %s appears more than once", card)
		}
		seen[card] = true
	}

	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
	for _, suit := range suits {
		for _, rank := range ranks {
			if !seen[Card{Suit: suit, Rank: rank}] {
				t.Errorf("Deck is missing %s%s", rank, suit)
			}
		}
	}
}
