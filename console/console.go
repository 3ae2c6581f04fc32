package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/baccarat/events"
	"github.com/lazharichir/baccarat/table"
)

// Console runs an interactive betting session in the terminal
type Console struct {
	session *table.Session
	debug   bool
}

// New wires a console to a session and starts listening to its events
func New(session *table.Session, debug bool) *Console {
	c := &Console{session: session, debug: debug}
	session.RegisterEventHandler(c.handleEvent)
	return c
}

// handleEvent surfaces shoe refills and, in debug mode, dumps every event
func (c *Console) handleEvent(event events.Event) {
	if c.debug {
		fmt.Println("---")
		fmt.Println("Event:", event.Name())
		litter.D(event)
	}

	if refilled, ok := event.(events.ShoeRefilled); ok {
		pterm.Info.Printfln("Refilling shoe... %d decks, %d cards", refilled.DeckCount, refilled.CardCount)
	}
}

// Run plays rounds until the player quits or the bankroll runs dry
func (c *Console) Run() error {
	for c.session.CanBet() {
		pterm.Println()
		pterm.Info.Printfln("Balance: %d | Cards in shoe: %d | Rounds played: %d",
			c.session.Balance(), c.session.CardsInShoe(), c.session.RoundsPlayed())

		wager, amount, quit := c.promptBet()
		if quit {
			pterm.Info.Println("Thanks for playing!")
			return nil
		}

		if err := c.session.PlaceBet(wager, amount); err != nil {
			pterm.Error.Println(err.Error())
			continue
		}

		round, err := c.session.Play()
		if err != nil {
			return fmt.Errorf("play round: %w", err)
		}

		renderRound(round)
		renderOutcome(round)
	}

	pterm.Warning.Println("You are out of chips. Thanks for playing!")
	return nil
}

// promptBet asks for a wager and an amount. quit is true when the player
// chose to leave the table
func (c *Console) promptBet() (wager table.Wager, amount int, quit bool) {
	options := []string{"Player", "Bank", "Tie", "Quit"}
	selected, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Place your bet").WithOptions(options).Show()

	switch selected {
	case "Player":
		wager = table.WagerPlayer
	case "Bank":
		wager = table.WagerBank
	case "Tie":
		wager = table.WagerTie
	default:
		return "", 0, true
	}

	minBet := c.session.Rules().MinBet
	input, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText(fmt.Sprintf("Bet amount (min %d)", minBet)).
		WithDefaultValue(strconv.Itoa(minBet)).
		Show()

	// A bad amount settles to zero and lets the session reject it
	amount, _ = strconv.Atoi(strings.TrimSpace(input))
	return wager, amount, false
}
