package table

import (
	"time"

	"github.com/google/uuid"

	"github.com/lazharichir/baccarat/baccarat"
	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/events"
)

// CardSource deals the cards for a round
type CardSource interface {
	Draw(count int) cards.Stack
}

// Round is one coup dealt from the shoe
type Round struct {
	ID      string
	Player  baccarat.Player
	Bank    baccarat.Bank
	Outcome baccarat.Outcome
	Natural bool
}

// PlayRound deals and resolves one coup. Two cards go to the player and two
// to the bank; a natural on either side ends the coup, otherwise the player
// draws by the player rule and the bank by the bank tableau. Every observable
// step is passed to handler as an event
func PlayRound(tableID string, shoe CardSource, handler events.EventHandler) Round {
	emit := func(event events.Event) {
		if handler != nil {
			handler(event)
		}
	}

	round := Round{ID: uuid.NewString()}
	emit(events.RoundStarted{
		TableID: tableID,
		RoundID: round.ID,
		At:      time.Now(),
	})

	round.Player = baccarat.NewPlayer(shoe.Draw(2)...)
	round.Bank = baccarat.NewBank(shoe.Draw(2)...)

	emit(events.InitialHandsDealt{
		TableID:     tableID,
		RoundID:     round.ID,
		PlayerCards: round.Player.Cards(),
		BankCards:   round.Bank.Cards(),
		PlayerValue: round.Player.Value(),
		BankValue:   round.Bank.Value(),
	})

	if round.Player.Natural() || round.Bank.Natural() {
		round.Natural = true
		emit(events.NaturalDealt{
			TableID:     tableID,
			RoundID:     round.ID,
			PlayerValue: round.Player.Value(),
			BankValue:   round.Bank.Value(),
		})
	} else {
		var playerThird *cards.Card
		if round.Player.NeedsThirdCard() {
			card := shoe.Draw(1)[0]
			round.Player.AddCards(card)
			playerThird = &card
			emit(events.PlayerDrewThirdCard{
				TableID: tableID,
				RoundID: round.ID,
				Card:    card,
				Value:   round.Player.Value(),
			})
		} else {
			emit(events.PlayerStood{
				TableID: tableID,
				RoundID: round.ID,
				Value:   round.Player.Value(),
			})
		}

		if round.Bank.NeedsThirdCard(playerThird) {
			card := shoe.Draw(1)[0]
			round.Bank.AddCards(card)
			emit(events.BankDrewThirdCard{
				TableID: tableID,
				RoundID: round.ID,
				Card:    card,
				Value:   round.Bank.Value(),
			})
		} else {
			emit(events.BankStood{
				TableID: tableID,
				RoundID: round.ID,
				Value:   round.Bank.Value(),
			})
		}
	}

	round.Outcome = baccarat.Compare(round.Player.Value(), round.Bank.Value())

	emit(events.RoundEnded{
		TableID:     tableID,
		RoundID:     round.ID,
		Outcome:     string(round.Outcome),
		PlayerCards: round.Player.Cards(),
		BankCards:   round.Bank.Cards(),
		PlayerValue: round.Player.Value(),
		BankValue:   round.Bank.Value(),
		Natural:     round.Natural,
	})

	return round
}
