package baccarat

import (
	"slices"

	"github.com/lazharichir/baccarat/cards"
)

// bankDrawRanges maps a two-card bank value to the player third-card values
// that oblige the bank to draw. Totals of seven or more always stand
var bankDrawRanges = map[int][]int{
	3: {0, 1, 2, 3, 4, 5, 6, 7, 9},
	4: {2, 3, 4, 5, 6, 7},
	5: {4, 5, 6, 7},
	6: {6, 7},
}

// Bank represents the banco side of a coup
type Bank struct {
	Hand
}

// NewBank creates a bank holding the given cards
func NewBank(held ...cards.Card) Bank {
	return Bank{Hand: NewHand(held...)}
}

// NeedsThirdCard applies the bank tableau to a two-card bank hand.
// playerThirdCard is the card the player drew, or nil when the player stood.
// A bank holding anything but two cards never draws
func (b *Bank) NeedsThirdCard(playerThirdCard *cards.Card) bool {
	if b.Len() != 2 {
		return false
	}

	value := b.Value()

	if playerThirdCard != nil {
		if value <= 2 {
			return true
		}
		draws, ok := bankDrawRanges[value]
		if !ok {
			return false
		}
		return slices.Contains(draws, playerThirdCard.Value())
	}

	return value <= 5
}
