package cards

import (
	"math/rand"
	"strings"
)

// Stack represents an ordered pile of cards. The top of the pile is the
// last element, so adding a card places it on top
type Stack []Card

// NewStack creates a new stack holding the given cards bottom to top
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// AddCard places a card on top of the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards places cards on top of the stack in order
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// DealCard removes and returns the top card. Dealing from an empty stack
// returns the zero card
func (s *Stack) DealCard() Card {
	if len(*s) == 0 {
		return Card{}
	}

	card := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return card
}

// DealCards removes up to count cards from the top of the stack and
// returns them in the order dealt
func (s *Stack) DealCards(count int) Stack {
	if count > len(*s) {
		count = len(*s)
	}

	dealt := make(Stack, 0, count)
	for i := 0; i < count; i++ {
		dealt = append(dealt, s.DealCard())
	}
	return dealt
}

// Shuffle permutes the stack in place using the given source of randomness
func (s Stack) Shuffle(r *rand.Rand) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// String returns the space-separated representation of the stack
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
