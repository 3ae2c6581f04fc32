package console

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/lazharichir/baccarat/baccarat"
	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/table"
)

// renderCard paints a card with its suit color
func renderCard(card cards.Card) string {
	switch card.Suit {
	case cards.Hearts, cards.Diamonds:
		return pterm.LightRed(card.String())
	default:
		return pterm.LightWhite(card.String())
	}
}

func renderHand(title string, hand *baccarat.Hand) string {
	held := hand.Cards()
	parts := make([]string, len(held))
	for i, card := range held {
		parts[i] = renderCard(card)
	}

	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("%s\nValue: %d", strings.Join(parts, "  "), hand.Value())
}

// renderRound draws both hands side by side
func renderRound(round table.Round) {
	playerPanel := pterm.Panel{Data: renderHand("Player", &round.Player.Hand)}
	bankPanel := pterm.Panel{Data: renderHand("Bank", &round.Bank.Hand)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{playerPanel, bankPanel},
	}).Render()
}

// renderOutcome prints the result of a settled round
func renderOutcome(round table.Round) {
	if round.Natural {
		pterm.Info.Println("Natural: no third cards")
	}

	switch round.Outcome {
	case baccarat.OutcomePlayer:
		pterm.Success.Printfln("Player wins %d to %d", round.Player.Value(), round.Bank.Value())
	case baccarat.OutcomeBank:
		pterm.Success.Printfln("Bank wins %d to %d", round.Bank.Value(), round.Player.Value())
	default:
		pterm.Warning.Printfln("Tie at %d", round.Player.Value())
	}
}
