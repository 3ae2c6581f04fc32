package cards

// NewDeck52 creates a standard deck of 52 cards
func NewDeck52() Stack {
	var deck Stack
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	for _, suit := range suits {
		for _, rank := range ranks {
			deck.AddCard(Card{Suit: suit, Rank: rank})
		}
	}

	return deck
}
