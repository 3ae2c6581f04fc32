package baccarat

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/baccarat/cards"
)

// thirdCardWorth returns a player third card of the given baccarat value
func thirdCardWorth(t *testing.T, value int) cards.Card {
	t.Helper()
	shorthands := []string{"K♥", "A♥", "2♥", "3♥", "4♥", "5♥", "6♥", "7♥", "8♥", "9♥"}
	require.GreaterOrEqual(t, value, 0)
	require.Less(t, value, len(shorthands))
	return mustCard(t, shorthands[value])
}

func TestBank_NeedsThirdCard_PlayerStood(t *testing.T) {
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
			bank := NewBank(mustCards(t, tt.cards)...)
			assert.Equal(t, tt.value, bank.Value(), "fixture hand %q should be worth %d", tt.cards, tt.value)
			assert.Equal(t, tt.want, bank.NeedsThirdCard(nil))
		})
	}
}

func TestBank_NeedsThirdCard_PlayerDrew(t *testing.T) {
	// Per two-card bank value, the player third-card values the bank draws on
	tests := []struct {
		name  string
		cards string
		value int
		draws []int
	}{
		{"bank zero always draws", "10♠ Q♦", 0, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"bank one always draws", "A♠ K♦", 1, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"bank two always draws", "A♠ A♦", 2, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"bank three stands only against an eight", "A♠ 2♦", 3, []int{0, 1, 2, 3, 4, 5, 6, 7, 9}},
		{"bank four draws against two through seven", "2♠ 2♦", 4, []int{2, 3, 4, 5, 6, 7}},
		{"bank five draws against four through seven", "2♠ 3♦", 5, []int{4, 5, 6, 7}},
		{"bank six draws against six and seven", "3♠ 3♦", 6, []int{6, 7}},
		{"bank seven never draws", "3♠ 4♦", 7, nil},
		{"bank eight never draws", "4♠ 4♦", 8, nil},
		{"bank nine never draws", "4♠ 5♦", 9, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := NewBank(mustCards(t, tt.cards)...)
			require.Equal(t, tt.value, bank.Value(), "fixture hand %q should be worth %d", tt.cards, tt.value)

			for thirdValue := 0; thirdValue <= 9; thirdValue++ {
				third := thirdCardWorth(t, thirdValue)
				want := slices.Contains(tt.draws, thirdValue)
				assert.Equal(t, want, bank.NeedsThirdCard(&third),
					"bank %d against player third card worth %d", tt.value, thirdValue)
			}
		})
	}
}

func TestBank_NeedsThirdCard_RequiresTwoCards(t *testing.T) {
	third := mustCard(t, "6♥")

	tests := []struct {
		name  string
		cards string
	}{
		{"empty hand", ""},
		{"one card", "2♠"},
		{"three cards totalling five", "A♠ 2♦ 2♣"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := NewBank(mustCards(t, tt.cards)...)
			assert.False(t, bank.NeedsThirdCard(nil), "a bank not holding exactly two cards never draws")
			assert.False(t, bank.NeedsThirdCard(&third), "a bank not holding exactly two cards never draws")
		})
	}
}

func TestBank_NeedsThirdCard_ZeroValueThirdCard(t *testing.T) {
	// A face-card third card counts zero, not ten
	bank := NewBank(mustCards(t, "A♠ 2♦")...)
	king := mustCard(t, "K♥")

	assert.True(t, bank.NeedsThirdCard(&king), "bank three draws against a zero-value third card")
}
