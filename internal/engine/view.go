package engine

// CardView is the display form of an establishment.
type CardView struct {
	Name        string `json:"name"`
	ShortDesc   string `json:"short_desc"`
	Desc        string `json:"desc"`
	Cost        int    `json:"cost"`
	Color       string `json:"color"`
	Family      string `json:"family"`
	Activations []int  `json:"activations"`
	Count       int    `json:"count"`
}

// LandmarkView is the display form of a landmark.
type LandmarkView struct {
	Name        string `json:"name"`
	ShortDesc   string `json:"short_desc"`
	Cost        int    `json:"cost"`
	Constructed bool   `json:"constructed"`
}

// PublicPlayerData is what everyone sees about a player.
type PublicPlayerData struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Money     int            `json:"money"`
	Cards     []CardView     `json:"cards"`
	Landmarks []LandmarkView `json:"landmarks"`
}

// ActionView is one entry of the current action list.
type ActionView struct {
	Index int        `json:"index"`
	Type  ActionType `json:"type"`
	Desc  string     `json:"desc"`
}

// PublicViewData is the game state visible to every participant.
type PublicViewData struct {
	Phase         string             `json:"phase"`
	State         string             `json:"state"`
	Expansion     string             `json:"expansion"`
	CurrentPlayer string             `json:"current_player"`
	RollResult    int                `json:"roll_result"`
	RolledDice    int                `json:"rolled_dice"`
	Players       []PublicPlayerData `json:"players"`
	Market        []CardView         `json:"market"`
	Standings     []StandingEntry    `json:"standings,omitempty"`
}

// PlayerViewData adds the action list for the player whose turn it is.
type PlayerViewData struct {
	PublicViewData
	IsMyTurn   bool         `json:"is_my_turn"`
	Generation uint64       `json:"generation"`
	Actions    []ActionView `json:"actions,omitempty"`
}

func cardView(c *Card, count int) CardView {
	return CardView{
		Name:        c.Name,
		ShortDesc:   c.ShortDesc,
		Desc:        c.Desc,
		Cost:        c.Cost,
		Color:       c.Color.String(),
		Family:      c.Family.String(),
		Activations: c.Activations(),
		Count:       count,
	}
}

// groupCards collapses a player's cards into one view per kind, in card order.
func groupCards(cards []*Card) []CardView {
	sorted := make([]*Card, len(cards))
	copy(sorted, cards)
	SortCards(sorted)
	var out []CardView
	for _, c := range sorted {
		if n := len(out); n > 0 && out[n-1].Name == c.Name {
			out[n-1].Count++
			continue
		}
		out = append(out, cardView(c, 1))
	}
	return out
}

func (g *Game) PublicView() PublicViewData {
	pv := PublicViewData{
		Phase:         g.Phase.String(),
		State:         g.StateStr(),
		Expansion:     g.Expansion.Name,
		CurrentPlayer: g.CurrentPlayer().Name,
		RollResult:    g.RollResult,
		RolledDice:    g.RolledDice,
	}

	for _, p := range g.Players {
		ppd := PublicPlayerData{
			ID:    p.ID,
			Name:  p.Name,
			Money: p.Money,
			Cards: groupCards(p.cards),
		}
		for _, l := range p.landmarks {
			ppd.Landmarks = append(ppd.Landmarks, LandmarkView{
				Name:        l.Name,
				ShortDesc:   l.ShortDesc,
				Cost:        l.Cost,
				Constructed: l.Constructed,
			})
		}
		pv.Players = append(pv.Players, ppd)
	}

	available := g.Market.CardsAvailable()
	market := make([]*Card, 0, len(available))
	for c := range available {
		market = append(market, c)
	}
	SortCards(market)
	for _, c := range market {
		pv.Market = append(pv.Market, cardView(c, available[c]))
	}

	if g.Phase == PhaseGameOver {
		pv.Standings = g.Standings()
	}
	return pv
}

func (g *Game) ViewFor(playerID string) PlayerViewData {
	pv := PlayerViewData{
		PublicViewData: g.PublicView(),
		Generation:     g.generation,
	}
	pv.IsMyTurn = g.CurrentPlayer().ID == playerID
	if !pv.IsMyTurn {
		return pv
	}
	for i, a := range g.actions {
		pv.Actions = append(pv.Actions, ActionView{Index: i, Type: a.Type, Desc: a.Desc})
	}
	return pv
}
