package engine

// resolveCard applies a card's payout rule for one roll. rolledBy is the
// player who rolled the dice.
func (g *Game) resolveCard(c *Card, rolledBy *Player) {
	owner := c.owner
	if owner == nil {
		return
	}
	if c.Required != nil && !owner.HasConstructed(*c.Required) {
		return
	}

	switch r := c.rule.(type) {
	case FixedPayout:
		g.payFromBank(owner, r.Amount+c.bonus(), c)

	case FamilyFactoryPayout:
		g.payFactory(c, r.Rate*owner.CountFamily(r.Target))

	case KindFactory:
		g.payFactory(c, r.Rate*owner.CountKind(r.Target))

	case BasicFee:
		g.transfer(rolledBy, owner, min(r.Fee+c.bonus(), rolledBy.Money), c)

	case StealFromAll:
		for _, p := range g.otherPlayers(owner) {
			g.transfer(p, owner, min(r.Amount, p.Money), c)
		}

	case PublisherSteal:
		for _, p := range g.otherPlayers(owner) {
			n := p.CountFamily(FamilyCup) + p.CountFamily(FamilyBread)
			g.transfer(p, owner, min(n, p.Money), c)
		}

	case TaxSteal:
		for _, p := range g.otherPlayers(owner) {
			if p.Money >= r.Threshold {
				g.transfer(p, owner, p.Money/2, c)
			}
		}

	case ChoosePlayerSteal:
		if len(g.otherPlayers(owner)) > 0 {
			g.AddPendingCard(c)
		}

	case TradeCards:
		r.trade.own = nil
		r.trade.other = nil
		if g.canTrade(owner) {
			g.AddPendingCard(c)
		}

	case SharedRoll:
		g.payFromBank(owner, g.sharedRoll(), c)
	}
}

// bonus is the Shopping Mall coin added to Bread and Cup payouts.
func (c *Card) bonus() int {
	if c.hasBreadCupBonus() {
		return 1
	}
	return 0
}

// payFactory pays a per-match amount. A factory with no matching cards pays
// nothing, bonus included.
func (g *Game) payFactory(c *Card, base int) {
	if base <= 0 {
		return
	}
	g.payFromBank(c.owner, base+c.bonus(), c)
}

func (g *Game) payFromBank(to *Player, amount int, c *Card) {
	if amount <= 0 {
		return
	}
	to.Money += amount
	g.AddEvent(coinsEvent(to, amount, nil, c.Name, ""))
}

// transfer moves coins between players. Zero transfers are silent.
func (g *Game) transfer(from, to *Player, amount int, c *Card) {
	if amount <= 0 {
		return
	}
	from.Money -= amount
	to.Money += amount
	g.AddEvent(coinsEvent(to, amount, from, c.Name, ""))
}
