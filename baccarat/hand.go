package baccarat

import (
	"github.com/lazharichir/baccarat/cards"
)

// Hand represents the cards held by one side of a coup
type Hand struct {
	cards cards.Stack
}

// NewHand creates a hand holding the given cards
func NewHand(held ...cards.Card) Hand {
	h := Hand{}
	h.AddCards(held...)
	return h
}

// AddCards places cards into the hand in the order dealt
func (h *Hand) AddCards(held ...cards.Card) {
	h.cards.AddCards(held...)
}

// Cards returns a copy of the cards held, in the order received
func (h *Hand) Cards() cards.Stack {
	return append(cards.Stack(nil), h.cards...)
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value returns the baccarat value of the hand: the card values are summed
// and the total is reduced modulo ten once
func (h *Hand) Value() int {
	total := 0
	for _, c := range h.cards {
		total += c.Value()
	}
	return total % 10
}

// Natural reports whether the hand is a two-card eight or nine
func (h *Hand) Natural() bool {
	return len(h.cards) == 2 && h.Value() >= 8
}

// String returns the space-separated representation of the hand
func (h *Hand) String() string {
	return h.cards.String()
}
