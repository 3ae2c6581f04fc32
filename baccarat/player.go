package baccarat

import (
	"github.com/lazharichir/baccarat/cards"
)

// Player represents the punto side of a coup
type Player struct {
	Hand
}

// NewPlayer creates a player holding the given cards
func NewPlayer(held ...cards.Card) Player {
	return Player{Hand: NewHand(held...)}
}

// NeedsThirdCard reports whether the player draws: the player takes a third
// card on a two-card total of zero through five and stands otherwise
func (p *Player) NeedsThirdCard() bool {
	return p.Value() <= 5
}
