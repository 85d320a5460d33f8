package engine

// GamePhase represents the current phase of the turn state machine.
type GamePhase int

const (
	PhaseTurnBegin           GamePhase = iota // current player must roll
	PhaseAskReroll                            // Radio Tower: keep or reroll
	PhaseAskAddToRoll                         // Harbor: keep or add 2
	PhaseEstablishmentChoice                  // pending cards await a decision
	PhasePurchaseDecision                     // buy a card, a landmark, or nothing
	PhaseGameOver                             // a player built every landmark
)

var phaseNames = map[GamePhase]string{
	PhaseTurnBegin:           "TurnBegin",
	PhaseAskReroll:           "AskReroll",
	PhaseAskAddToRoll:        "AskAddToRoll",
	PhaseEstablishmentChoice: "EstablishmentChoice",
	PhasePurchaseDecision:    "PurchaseDecision",
	PhaseGameOver:            "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
