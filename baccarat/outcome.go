package baccarat

// Outcome represents the result of a coup
type Outcome string

const (
	OutcomePlayer Outcome = "player"
	OutcomeBank   Outcome = "bank"
	OutcomeTie    Outcome = "tie"
)

// Compare maps the final hand values to the winning side
func Compare(playerValue, bankValue int) Outcome {
	switch {
	case playerValue > bankValue:
		return OutcomePlayer
	case bankValue > playerValue:
		return OutcomeBank
	default:
		return OutcomeTie
	}
}
