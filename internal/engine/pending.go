package engine

import "fmt"

// pendingActions lists the decisions a pending card offers its owner.
func (g *Game) pendingActions(c *Card) []*Action {
	switch r := c.rule.(type) {
	case ChoosePlayerSteal:
		var actions []*Action
		for _, p := range g.otherPlayers(c.owner) {
			actions = append(actions, g.choosePlayerAction(c, r.Amount, p))
		}
		return actions

	case TradeCards:
		var actions []*Action
		if r.trade.own == nil {
			for _, own := range distinctTradeable(c.owner) {
				actions = append(actions, g.chooseOwnCardAction(c, r.trade, own))
			}
		}
		if r.trade.other == nil {
			for _, p := range g.otherPlayers(c.owner) {
				for _, theirs := range distinctTradeable(p) {
					actions = append(actions, g.chooseOtherCardAction(c, r.trade, theirs))
				}
			}
		}
		return actions
	}
	return nil
}

// canTrade reports whether p and at least one opponent hold a tradeable card.
func (g *Game) canTrade(p *Player) bool {
	if len(distinctTradeable(p)) == 0 {
		return false
	}
	for _, other := range g.otherPlayers(p) {
		if len(distinctTradeable(other)) > 0 {
			return true
		}
	}
	return false
}

// distinctTradeable returns the first card of every non-major kind p owns.
func distinctTradeable(p *Player) []*Card {
	seen := make(map[CardKind]bool)
	var out []*Card
	for _, c := range p.cards {
		if c.IsMajor() || seen[c.Kind] {
			continue
		}
		seen[c.Kind] = true
		out = append(out, c)
	}
	return out
}

func (g *Game) choosePlayerAction(source *Card, amount int, target *Player) *Action {
	owner := source.owner
	return &Action{
		Type:   ActionChoosePlayer,
		Desc:   fmt.Sprintf("Choose player %q (%s) (from %s)", target.Name, plural(target.Money, "coin"), source.Name),
		Player: owner,
		Source: source,
		Target: target,
		do: func() error {
			g.transfer(target, owner, min(amount, target.Money), source)
			g.RemovePendingCard(source)
			g.FinishRoll()
			return nil
		},
	}
}

func (g *Game) chooseOwnCardAction(source *Card, trade *tradeState, card *Card) *Action {
	owner := source.owner
	return &Action{
		Type:   ActionChooseOwnCard,
		Desc:   fmt.Sprintf("Choose your card to trade: %s (from %s)", card.Name, source.Name),
		Player: owner,
		Card:   card,
		Source: source,
		do: func() error {
			return g.chooseOwnCard(source, trade, card)
		},
	}
}

func (g *Game) chooseOtherCardAction(source *Card, trade *tradeState, card *Card) *Action {
	owner := source.owner
	return &Action{
		Type:   ActionChooseOtherCard,
		Desc:   fmt.Sprintf("Choose %s's card to receive: %s (for %s)", card.owner.Name, card.Name, source.Name),
		Player: owner,
		Card:   card,
		Source: source,
		Target: card.owner,
		do: func() error {
			return g.chooseOtherCard(source, trade, card)
		},
	}
}

func (g *Game) chooseOwnCard(source *Card, trade *tradeState, card *Card) error {
	owner := source.owner
	if card.owner != owner || !owner.Holds(card) {
		return invariantf(ErrCardNotOwned, "%s is not held by %s", card.Name, owner.Name)
	}
	if card.IsMajor() {
		return invariantf(ErrMajorNotTradeable, "%s", card.Name)
	}
	trade.own = card
	g.AddEvent(choseOwnCardEvent(owner, card, source))
	return g.completeTrade(source, trade)
}

func (g *Game) chooseOtherCard(source *Card, trade *tradeState, card *Card) error {
	owner := source.owner
	if card.owner == nil || card.owner == owner || !card.owner.Holds(card) {
		return invariantf(ErrCardNotOwned, "%s is not held by an opponent of %s", card.Name, owner.Name)
	}
	if card.IsMajor() {
		return invariantf(ErrMajorNotTradeable, "%s", card.Name)
	}
	trade.other = card
	g.AddEvent(choseOtherCardEvent(owner, card, source))
	return g.completeTrade(source, trade)
}

// completeTrade swaps the two selected cards once both are chosen.
func (g *Game) completeTrade(source *Card, trade *tradeState) error {
	if trade.own == nil || trade.other == nil {
		return nil
	}
	owner := source.owner
	other := trade.other.owner
	g.AddEvent(tradedEvent(owner, trade.own, other, trade.other))
	if err := other.AddCard(trade.own); err != nil {
		return err
	}
	if err := owner.AddCard(trade.other); err != nil {
		return err
	}
	trade.own = nil
	trade.other = nil
	g.RemovePendingCard(source)
	g.FinishRoll()
	return nil
}
