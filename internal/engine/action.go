package engine

import "fmt"

// ActionType identifies the kind of an Action.
type ActionType string

const (
	ActionRollOne         ActionType = "roll_one"
	ActionRollTwo         ActionType = "roll_two"
	ActionKeepRoll        ActionType = "keep_roll"
	ActionAddToRoll       ActionType = "add_to_roll"
	ActionSkipBuy         ActionType = "skip_buy"
	ActionBuyCard         ActionType = "buy_card"
	ActionBuyLandmark     ActionType = "buy_landmark"
	ActionChoosePlayer    ActionType = "choose_player"
	ActionChooseOwnCard   ActionType = "choose_own_card"
	ActionChooseOtherCard ActionType = "choose_other_card"
)

// Action is a single-use command offered to the current player. Actions are
// only valid for the generation of the list they were offered in.
type Action struct {
	Type     ActionType
	Desc     string
	Player   *Player
	Card     *Card     // card to buy or choose
	Source   *Card     // pending card that offered the action
	Landmark *Landmark // landmark to construct
	Target   *Player   // player to take coins from

	game       *Game
	generation uint64
	used       bool
	do         func() error
}

func (a *Action) String() string {
	return a.Desc
}

// Actions returns the actions currently available.
func (g *Game) Actions() []*Action {
	out := make([]*Action, len(g.actions))
	copy(out, g.actions)
	return out
}

// Generation identifies the current action list.
func (g *Game) Generation() uint64 {
	return g.generation
}

// Execute performs an action from the current list and regenerates the list.
func (g *Game) Execute(a *Action) error {
	if a == nil || a.game != g {
		return invariantf(ErrInvalidAction, "action does not belong to this game")
	}
	if a.used || a.generation != g.generation {
		return invariantf(ErrStaleAction, "%q", a.Desc)
	}
	a.used = true
	err := a.do()
	if serr := g.SetUpAvailableActions(); err == nil {
		err = serr
	}
	return err
}

// ExecuteIndex performs the action at index of the list identified by generation.
func (g *Game) ExecuteIndex(generation uint64, index int) error {
	if generation != g.generation {
		return fmt.Errorf("%w: generation %d, current %d", ErrStaleAction, generation, g.generation)
	}
	if index < 0 || index >= len(g.actions) {
		return fmt.Errorf("%w: index %d", ErrInvalidAction, index)
	}
	return g.Execute(g.actions[index])
}

// SetUpAvailableActions rebuilds the action list from the current phase.
func (g *Game) SetUpAvailableActions() error {
	g.generation++
	cur := g.CurrentPlayer()
	var actions []*Action

	switch g.Phase {
	case PhaseTurnBegin:
		actions = append(actions, g.rollOneAction(cur, 1))
		if cur.Ability(AbilityTwoDice) != nil {
			actions = append(actions, g.rollTwoAction(cur, 2))
		}

	case PhasePurchaseDecision:
		actions = append(actions, g.skipBuyAction(cur))
		available := g.Market.CardsAvailable()
		cards := make([]*Card, 0, len(available))
		for c := range available {
			cards = append(cards, c)
		}
		SortCards(cards)
		for _, c := range cards {
			if available[c] <= 0 || cur.Money < c.Cost {
				continue
			}
			if c.IsMajor() && cur.HasCard(c.Kind) {
				continue
			}
			actions = append(actions, g.buyCardAction(cur, c))
		}
		for _, l := range cur.landmarks {
			if !l.Constructed && cur.Money >= l.Cost {
				actions = append(actions, g.buyLandmarkAction(cur, l))
			}
		}

	case PhaseAskReroll:
		actions = append(actions, g.keepRollAction(cur, g.RollResult, true))
		switch g.RolledDice {
		case 1:
			actions = append(actions, g.rollOneAction(cur, NoReroll))
		case 2:
			actions = append(actions, g.rollTwoAction(cur, NoReroll))
		default:
			g.actions = nil
			return invariantf(ErrUnknownDiceCount, "%d", g.RolledDice)
		}

	case PhaseAskAddToRoll:
		actions = append(actions, g.keepRollAction(cur, g.RollResult, false))
		actions = append(actions, g.addToRollAction(cur, g.RollResult))

	case PhaseEstablishmentChoice:
		for _, c := range g.pending {
			actions = append(actions, g.pendingActions(c)...)
		}
	}

	for _, a := range actions {
		a.game = g
		a.generation = g.generation
	}
	g.actions = actions
	return nil
}

// rollOneAction rolls a single die. diceCount is NoReroll for a reroll.
func (g *Game) rollOneAction(p *Player, diceCount int) *Action {
	verb := "Roll"
	if diceCount == NoReroll {
		verb = "Reroll"
	}
	return &Action{
		Type:   ActionRollOne,
		Desc:   verb + " One Die",
		Player: p,
		do: func() error {
			roll := g.dice.Roll()
			g.RolledDice = 1
			g.RollResult = roll
			p.RolledDoubles = false
			g.AddEvent(rolledOneEvent(p, roll))
			g.PlayerRolled(roll, diceCount, true)
			return nil
		},
	}
}

func (g *Game) rollTwoAction(p *Player, diceCount int) *Action {
	verb := "Roll"
	if diceCount == NoReroll {
		verb = "Reroll"
	}
	return &Action{
		Type:   ActionRollTwo,
		Desc:   verb + " Two Dice",
		Player: p,
		do: func() error {
			d1, d2 := g.dice.Roll(), g.dice.Roll()
			g.RolledDice = 2
			g.RollResult = d1 + d2
			p.RolledDoubles = d1 == d2
			g.AddEvent(rolledTwoEvent(p, d1, d2))
			g.PlayerRolled(d1+d2, diceCount, true)
			return nil
		},
	}
}

func (g *Game) keepRollAction(p *Player, roll int, allowAddition bool) *Action {
	return &Action{
		Type:   ActionKeepRoll,
		Desc:   fmt.Sprintf("Keep your die roll of %d", roll),
		Player: p,
		do: func() error {
			g.AddEvent(keptRollEvent(p, roll))
			g.PlayerRolled(roll, NoReroll, allowAddition)
			return nil
		},
	}
}

func (g *Game) addToRollAction(p *Player, roll int) *Action {
	const added = 2
	return &Action{
		Type:   ActionAddToRoll,
		Desc:   fmt.Sprintf("Add %d to roll (result: %d)", added, roll+added),
		Player: p,
		do: func() error {
			g.RollResult = roll + added
			g.AddEvent(addedToRollEvent(p, added, roll+added))
			g.PlayerRolled(roll+added, NoReroll, false)
			return nil
		},
	}
}

func (g *Game) skipBuyAction(p *Player) *Action {
	return &Action{
		Type:   ActionSkipBuy,
		Desc:   "Don't buy anything",
		Player: p,
		do: func() error {
			g.AddEvent(didNotBuyEvent(p))
			if p.Ability(AbilityTenCoins) != nil {
				p.Money += 10
				g.AddEvent(airportEvent(p))
			}
			g.BuyFinished()
			return nil
		},
	}
}

func (g *Game) buyCardAction(p *Player, c *Card) *Action {
	return &Action{
		Type:   ActionBuyCard,
		Desc:   fmt.Sprintf("Buy Card: $%d for %s (%s) [%s] [%s]", c.Cost, c.Name, c.ShortDesc, c.ActivationLabel(), c.Family),
		Player: p,
		Card:   c,
		do: func() error {
			if p.Money < c.Cost {
				return invariantf(ErrNotEnoughMoney, "%s has %d, %s costs %d", p.Name, p.Money, c.Name, c.Cost)
			}
			if c.IsMajor() && p.HasCard(c.Kind) {
				return invariantf(ErrAlreadyOwned, "%s already owns %s", p.Name, c.Name)
			}
			bought, err := g.Market.TakeCard(c)
			if err != nil {
				return fmt.Errorf("buy %s: %w", c.Name, err)
			}
			p.Money -= bought.Cost
			if err := p.AddCard(bought); err != nil {
				return err
			}
			g.AddEvent(boughtCardEvent(p, bought))
			g.BuyFinished()
			return nil
		},
	}
}

func (g *Game) buyLandmarkAction(p *Player, l *Landmark) *Action {
	return &Action{
		Type:     ActionBuyLandmark,
		Desc:     fmt.Sprintf("Construct Landmark: %s for %d", l.Name, l.Cost),
		Player:   p,
		Landmark: l,
		do: func() error {
			if l.Constructed {
				return invariantf(ErrAlreadyBuilt, "%s", l.Name)
			}
			if p.Money < l.Cost {
				return invariantf(ErrNotEnoughMoney, "%s has %d, %s costs %d", p.Name, p.Money, l.Name, l.Cost)
			}
			p.Money -= l.Cost
			l.Construct()
			g.AddEvent(constructedEvent(p, l))
			if !g.CheckVictory(p) {
				g.BuyFinished()
			}
			return nil
		},
	}
}
