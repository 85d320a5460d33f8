package engine

import (
	"errors"

	"go.uber.org/zap"
)

var (
	ErrNoPlayers         = errors.New("game needs at least one player")
	ErrInvalidAction     = errors.New("invalid action")
	ErrStaleAction       = errors.New("action is no longer available")
	ErrNotEnoughMoney    = errors.New("not enough money")
	ErrAlreadyBuilt      = errors.New("landmark already constructed")
	ErrAlreadyOwned      = errors.New("major establishment already owned")
	ErrCardNotOwned      = errors.New("card is not in the expected collection")
	ErrMajorNotTradeable = errors.New("major establishments cannot be traded")
	ErrUnknownDiceCount  = errors.New("unknown number of dice rolled")
	ErrMarketExhausted   = errors.New("card not available in the market")
	ErrUnknownCard       = errors.New("unknown card kind")
	ErrUnknownLandmark   = errors.New("unknown landmark kind")
	ErrUnknownExpansion  = errors.New("unknown expansion")
	ErrUnknownMarket     = errors.New("unknown market")
	ErrPlayerNotFound    = errors.New("player not found")
)

var stateDescriptions = map[GamePhase]string{
	PhaseTurnBegin:           "Beginning of turn",
	PhaseAskReroll:           "Asking if player wants to re-roll",
	PhaseAskAddToRoll:        "Asking if player wants to add +2 to dice roll",
	PhaseEstablishmentChoice: "Waiting for player to make Establishment decision",
	PhasePurchaseDecision:    "Waiting for player to make purchase decision",
	PhaseGameOver:            "Game Over",
}

// Game holds the entire game state. It is not safe for concurrent use;
// callers serialize access per instance.
type Game struct {
	Players   []*Player `json:"players"`
	Expansion Expansion `json:"-"`
	Market    Market    `json:"-"`

	Phase      GamePhase `json:"phase"`
	CurrentIdx int       `json:"current_idx"`
	RollResult int       `json:"roll_result"`
	RolledDice int       `json:"rolled_dice"`

	pending []*Card

	// Tuna Boat roll shared by every boat resolving in one roll.
	tunaRoll    int
	tunaRolled  bool
	tunaRollGen int

	actions    []*Action
	generation uint64

	events []Event
	dice   Dice
	logger *zap.Logger
}

// NewGame seats the players, builds the market and prepares the first turn.
func NewGame(players []*Player, config GameConfig) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if config.Market == nil {
		config.Market = NewBaseMarket
	}
	if config.Dice == nil {
		config.Dice = NewRandomDice(0)
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	g := &Game{
		Players:   players,
		Expansion: config.Expansion,
		Phase:     PhaseTurnBegin,
		dice:      config.Dice,
		logger:    config.Logger,
	}

	deck, err := config.Expansion.GenerateDeck(len(players))
	if err != nil {
		return nil, err
	}
	g.Market = config.Market(deck, g)

	for _, p := range players {
		p.game = g
		if err := p.setupLandmarks(config.Expansion.Landmarks); err != nil {
			return nil, err
		}
	}

	// Setup chatter from the market is not part of the game log.
	g.events = nil

	if err := g.SetUpAvailableActions(); err != nil {
		return nil, err
	}
	g.logger.Debug("game created",
		zap.String("expansion", config.Expansion.Name),
		zap.Int("players", len(players)),
	)
	return g, nil
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.CurrentIdx]
}

// GetPlayer returns the player with the given ID, or nil.
func (g *Game) GetPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayersCounterclockwise returns every other player, starting with the one
// seated just before p and continuing backwards around the table.
func (g *Game) PlayersCounterclockwise(p *Player) []*Player {
	n := len(g.Players)
	idx := -1
	for i, other := range g.Players {
		if other == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]*Player, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, g.Players[(idx-i+n)%n])
	}
	return out
}

// otherPlayers returns every player except p in seating order.
func (g *Game) otherPlayers(p *Player) []*Player {
	out := make([]*Player, 0, len(g.Players)-1)
	for _, other := range g.Players {
		if other != p {
			out = append(out, other)
		}
	}
	return out
}

// NoReroll is passed as the dice count once a roll can no longer be rerolled.
const NoReroll = 0

// PlayerRolled processes a roll total for the current player. diceCount is
// the number of dice rolled while a reroll is still possible, or NoReroll.
func (g *Game) PlayerRolled(roll, diceCount int, allowAddition bool) {
	cur := g.CurrentPlayer()

	if diceCount != NoReroll && cur.Ability(AbilityReroll) != nil {
		g.setPhase(PhaseAskReroll)
		return
	}

	if allowAddition && roll >= 10 && cur.Ability(AbilityAddTwo) != nil {
		g.setPhase(PhaseAskAddToRoll)
		return
	}

	for _, p := range g.PlayersCounterclockwise(cur) {
		p.ProcessRoll(roll, ColorRed, cur)
	}
	for _, p := range g.Players {
		p.ProcessRoll(roll, ColorBlue, cur)
	}
	g.tunaRolled = false
	g.tunaRoll = 0

	cur.ProcessRoll(roll, ColorGreen, cur)
	cur.ProcessRoll(roll, ColorPurple, cur)

	g.FinishRoll()
}

// FinishRoll moves on to purchasing once no pending card needs a decision.
func (g *Game) FinishRoll() {
	if len(g.pending) > 0 {
		g.setPhase(PhaseEstablishmentChoice)
		return
	}
	g.setPhase(PhasePurchaseDecision)
	cur := g.CurrentPlayer()
	if hall := cur.Ability(AbilityCoinIfBroke); hall != nil && cur.Money == 0 {
		cur.Money = 1
		g.AddEvent(coinsEvent(cur, 1, nil, "", hall.Name))
	}
}

// BuyFinished ends the current player's purchase step and starts the next turn.
func (g *Game) BuyFinished() {
	cur := g.CurrentPlayer()
	if cur.RolledDoubles && cur.Ability(AbilityExtraTurn) != nil {
		g.AddEvent(anotherTurnEvent(cur))
	} else {
		g.CurrentIdx = (g.CurrentIdx + 1) % len(g.Players)
		g.AddEvent(turnChangeEvent(g.CurrentPlayer()))
	}
	g.pending = nil
	g.setPhase(PhaseTurnBegin)
}

// CheckVictory ends the game if p has constructed every landmark.
func (g *Game) CheckVictory(p *Player) bool {
	if !p.HasWon() {
		return false
	}
	g.AddEvent(playerWonEvent(p))
	g.setPhase(PhaseGameOver)
	g.logger.Info("game won", zap.String("player_id", p.ID), zap.String("player", p.Name))
	return true
}

// Winner returns the player who ended the game, or nil while it is running.
func (g *Game) Winner() *Player {
	if g.Phase != PhaseGameOver {
		return nil
	}
	for _, p := range g.Players {
		if p.HasWon() {
			return p
		}
	}
	return nil
}

// AddPendingCard queues a card that needs a player decision. Duplicates are ignored.
func (g *Game) AddPendingCard(c *Card) {
	for _, existing := range g.pending {
		if existing == c {
			return
		}
	}
	g.pending = append(g.pending, c)
}

// RemovePendingCard drops a resolved card from the pending list.
func (g *Game) RemovePendingCard(c *Card) {
	g.pending = removeCard(g.pending, c)
}

// PendingCards returns the cards awaiting a decision.
func (g *Game) PendingCards() []*Card {
	out := make([]*Card, len(g.pending))
	copy(out, g.pending)
	return out
}

// SharedRoll returns the cached Tuna Boat roll of the current roll cycle.
func (g *Game) SharedRoll() (int, bool) {
	return g.tunaRoll, g.tunaRolled
}

// SharedRollGeneration counts fresh Tuna Boat rolls made during the game.
func (g *Game) SharedRollGeneration() int {
	return g.tunaRollGen
}

func (g *Game) sharedRoll() int {
	if g.tunaRolled {
		return g.tunaRoll
	}
	d1, d2 := g.dice.Roll(), g.dice.Roll()
	g.tunaRoll = d1 + d2
	g.tunaRolled = true
	g.tunaRollGen++
	g.AddEvent(tunaRollEvent(d1, d2))
	return g.tunaRoll
}

// AddEvent appends an event to the game log.
func (g *Game) AddEvent(e Event) {
	g.events = append(g.events, e)
}

// ConsumeEvents drains the event log in emission order.
func (g *Game) ConsumeEvents() []Event {
	events := g.events
	g.events = nil
	return events
}

// StateStr describes the current phase for display.
func (g *Game) StateStr() string {
	return stateDescriptions[g.Phase]
}

func (g *Game) setPhase(p GamePhase) {
	if g.Phase != p {
		g.logger.Debug("phase change",
			zap.String("from", g.Phase.String()),
			zap.String("to", p.String()),
			zap.String("player", g.CurrentPlayer().Name),
		)
	}
	g.Phase = p
}
