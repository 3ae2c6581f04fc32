package baccarat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_NeedsThirdCard(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		value int
		want  bool
	}{
		{"draws on zero", "10♠ Q♦", 0, true},
		{"draws on one", "A♠ K♦", 1, true},
		{"draws on two", "A♠ A♦", 2, true},
		{"draws on three", "A♠ 2♦", 3, true},
		{"draws on four", "2♠ 2♦", 4, true},
		{"draws on five", "2♠ 3♦", 5, true},
		{"stands on six", "3♠ 3♦", 6, false},
		{"stands on seven", "3♠ 4♦", 7, false},
		{"stands on eight", "4♠ 4♦", 8, false},
		{"stands on nine", "4♠ 5♦", 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := NewPlayer(mustCards(t, tt.cards)...)
			assert.Equal(t, tt.value, player.Value(), "fixture hand %q should be worth %d", tt.cards, tt.value)
			assert.Equal(t, tt.want, player.NeedsThirdCard())
		})
	}
}
