package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoe_InvalidDeckCount(t *testing.T) {
	tests := []struct {
		name      string
		deckCount int
	}{
		{"zero decks", 0},
		{"negative decks", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shoe, err := NewShoe(tt.deckCount)
			require.ErrorIs(t, err, ErrInvalidDeckCount)
			assert.Nil(t, shoe)
		})
	}
}

func TestNewShoe_SingleDeck(t *testing.T) {
	shoe, err := NewShoe(1)
	require.NoError(t, err)

	assert.Equal(t, 1, shoe.DeckCount())
	assert.Equal(t, 52, shoe.Remaining())

	seen := make(map[Card]int)
	for _, card := range shoe.Draw(52) {
		seen[card]++
	}
	assert.Len(t, seen, 52, "Expected all 52 cards to be distinct")
}

func TestNewShoe_SixDecks(t *testing.T) {
	shoe, err := NewShoe(6)
	require.NoError(t, err)

	assert.Equal(t, 312, shoe.Remaining())

	counts := make(map[Card]int)
	for _, card := range shoe.Draw(312) {
		counts[card]++
	}
	require.Len(t, counts, 52, "Expected every distinct card to appear")
	for card, count := range counts {
		assert.Equal(t, 6, count, "Expected 6 copies of %s", card)
	}
}

func TestShoe_DrawComesOffTheTop(t *testing.T) {
	shoe, err := NewShoe(1, WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	// Rebuild the same shuffled pool to know the expected order
	expected := NewDeck52()
	expected.Shuffle(rand.New(rand.NewSource(7)))

	drawn := shoe.Draw(3)

	require.Len(t, drawn, 3)
	for i, card := range drawn {
		assert.Equal(t, expected[len(expected)-1-i], card, "Expected draw %d to come off the top", i)
	}
	assert.Equal(t, 49, shoe.Remaining())
}

func TestShoe_DrawZero(t *testing.T) {
	shoe, err := NewShoe(1)
	require.NoError(t, err)

	drawn := shoe.Draw(0)

	assert.Empty(t, drawn)
	assert.Equal(t, 52, shoe.Remaining())
}

func TestShoe_RefillsWhenEmptyMidDraw(t *testing.T) {
	shoe, err := NewShoe(1)
	require.NoError(t, err)

	refills := 0
	shoe.OnRefill(func(deckCount, cardCount int) {
		refills++
		assert.Equal(t, 1, deckCount)
		assert.Equal(t, 52, cardCount)
	})

	drawn := shoe.Draw(53)

	assert.Len(t, drawn, 53, "Expected the draw to be served in full")
	assert.Equal(t, 51, shoe.Remaining(), "Expected 51 cards left after drawing one from the fresh pool")
	assert.Equal(t, 1, refills, "Expected exactly one refill")
}

func TestShoe_RefillDiscardsRemainder(t *testing.T) {
	shoe, err := NewShoe(2)
	require.NoError(t, err)

	shoe.Draw(10)
	require.Equal(t, 94, shoe.Remaining())

	shoe.Refill()

	assert.Equal(t, 104, shoe.Remaining(), "Expected a full two-deck pool after refill")
}
