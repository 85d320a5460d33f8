package engine_test

import (
	"errors"
	"testing"

	"metrodice/internal/engine"
	"metrodice/internal/engine/mocks"

	"go.uber.org/mock/gomock"
)

// scriptedDice replays a fixed sequence of faces.
type scriptedDice struct {
	faces []int
}

func (d *scriptedDice) Roll() int {
	if len(d.faces) == 0 {
		panic("scriptedDice: out of faces")
	}
	f := d.faces[0]
	d.faces = d.faces[1:]
	return f
}

func dice(faces ...int) *scriptedDice {
	return &scriptedDice{faces: faces}
}

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newTestGame(t fataler, n int, d engine.Dice) *engine.Game {
	t.Helper()
	var players []*engine.Player
	for i := 0; i < n; i++ {
		p := engine.NewPlayer(
			string(rune('A'+i)),
			"Player"+string(rune('1'+i)),
		)
		players = append(players, p)
	}
	cfg := engine.DefaultConfig()
	cfg.Dice = d
	g, err := engine.NewGame(players, cfg)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func give(t fataler, p *engine.Player, kinds ...engine.CardKind) {
	t.Helper()
	for _, k := range kinds {
		if err := p.AddCard(engine.MustCard(k)); err != nil {
			t.Fatalf("give %s: %v", k, err)
		}
	}
}

func build(p *engine.Player, kinds ...engine.LandmarkKind) {
	for _, k := range kinds {
		p.Landmark(k).Construct()
	}
}

func execute(t *testing.T, g *engine.Game, want engine.ActionType) {
	t.Helper()
	for _, a := range g.Actions() {
		if a.Type == want {
			if err := g.Execute(a); err != nil {
				t.Fatalf("execute %q: %v", a.Desc, err)
			}
			return
		}
	}
	t.Fatalf("no %s action among %v", want, g.Actions())
}

func coinEventsFor(events []engine.Event, p *engine.Player) int {
	n := 0
	for _, e := range events {
		if e.Type == engine.EventCoinsReceived && e.Player == p.ID {
			n++
		}
	}
	return n
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 4, dice())
	if len(g.Players) != 4 {
		t.Fatalf("expected 4 players, got %d", len(g.Players))
	}
	if g.Phase != engine.PhaseTurnBegin {
		t.Fatalf("expected TurnBegin phase, got %s", g.Phase)
	}
	for _, p := range g.Players {
		if p.Money != 3 {
			t.Errorf("player %s should have 3 coins, got %d", p.Name, p.Money)
		}
		if !p.HasCard(engine.CardWheatField) || !p.HasCard(engine.CardBakery) {
			t.Errorf("player %s should start with Wheat Field and Bakery", p.Name)
		}
		if len(p.Landmarks()) != 7 {
			t.Errorf("player %s should have 7 landmarks, got %d", p.Name, len(p.Landmarks()))
		}
		if !p.HasConstructed(engine.LandmarkCityHall) {
			t.Errorf("player %s should start with City Hall built", p.Name)
		}
	}
	actions := g.Actions()
	if len(actions) != 1 || actions[0].Desc != "Roll One Die" {
		t.Fatalf("expected only Roll One Die, got %v", actions)
	}
	if len(g.ConsumeEvents()) != 0 {
		t.Fatal("setup events should be discarded")
	}
}

func TestNewGameNoPlayers(t *testing.T) {
	_, err := engine.NewGame(nil, engine.DefaultConfig())
	if !errors.Is(err, engine.ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
}

func TestFirstRollOfOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDice(ctrl)
	d.EXPECT().Roll().Return(1)

	g := newTestGame(t, 2, d)
	a, b := g.Players[0], g.Players[1]
	execute(t, g, engine.ActionRollOne)

	if a.Money != 4 {
		t.Fatalf("expected 4 coins, got %d", a.Money)
	}
	if b.Money != 4 {
		t.Fatalf("Wheat Field pays on anyone's turn: expected 4 coins for B, got %d", b.Money)
	}
	events := g.ConsumeEvents()
	if n := coinEventsFor(events, a); n != 1 {
		t.Fatalf("expected 1 payout event for A, got %d", n)
	}
	if events[0].Type != engine.EventRolledOneDie {
		t.Fatalf("expected roll event first, got %s", events[0].Type)
	}
	if g.Phase != engine.PhasePurchaseDecision {
		t.Fatalf("expected PurchaseDecision, got %s", g.Phase)
	}
	if g.RollResult != 1 || g.RolledDice != 1 {
		t.Fatalf("expected roll 1 with 1 die, got %d with %d", g.RollResult, g.RolledDice)
	}
}

func TestStadium(t *testing.T) {
	g := newTestGame(t, 3, dice())
	a, b, c := g.Players[0], g.Players[1], g.Players[2]
	give(t, a, engine.CardStadium)
	b.Money = 3
	c.Money = 1

	g.PlayerRolled(6, engine.NoReroll, false)

	if a.Money != 6 {
		t.Fatalf("expected 6 coins, got %d", a.Money)
	}
	if b.Money != 1 || c.Money != 0 {
		t.Fatalf("expected opponents at 1 and 0, got %d and %d", b.Money, c.Money)
	}
	if n := coinEventsFor(g.ConsumeEvents(), a); n != 2 {
		t.Fatalf("expected 2 payout events, got %d", n)
	}
}

func TestTVStation(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDice(ctrl)
	d.EXPECT().Roll().Return(6)

	g := newTestGame(t, 4, d)
	a, b := g.Players[0], g.Players[1]
	give(t, a, engine.CardTVStation)
	execute(t, g, engine.ActionRollOne)

	if g.Phase != engine.PhaseEstablishmentChoice {
		t.Fatalf("expected EstablishmentChoice, got %s", g.Phase)
	}
	actions := g.Actions()
	if len(actions) != 3 {
		t.Fatalf("expected 3 choices, got %d", len(actions))
	}
	want := `Choose player "Player2" (3 coins) (from TV Station)`
	if actions[0].Desc != want {
		t.Fatalf("expected %q, got %q", want, actions[0].Desc)
	}
	if err := g.Execute(actions[0]); err != nil {
		t.Fatalf("choose player: %v", err)
	}
	if a.Money != 6 || b.Money != 0 {
		t.Fatalf("expected 6 and 0, got %d and %d", a.Money, b.Money)
	}
	if g.Phase != engine.PhasePurchaseDecision {
		t.Fatalf("expected PurchaseDecision, got %s", g.Phase)
	}
	if len(g.PendingCards()) != 0 {
		t.Fatal("pending list should be empty")
	}
}

func TestBusinessCenterTrade(t *testing.T) {
	g := newTestGame(t, 2, dice(6))
	a, b := g.Players[0], g.Players[1]
	give(t, a, engine.CardBusinessCenter)
	give(t, b, engine.CardRanch)
	execute(t, g, engine.ActionRollOne)

	actions := g.Actions()
	var own, other int
	for _, act := range actions {
		switch act.Type {
		case engine.ActionChooseOwnCard:
			own++
		case engine.ActionChooseOtherCard:
			other++
		}
	}
	if own != 2 || other != 3 {
		t.Fatalf("expected 2 own and 3 other choices, got %d and %d", own, other)
	}

	for _, act := range actions {
		if act.Type == engine.ActionChooseOwnCard && act.Card.Kind == engine.CardBakery {
			if err := g.Execute(act); err != nil {
				t.Fatalf("choose own: %v", err)
			}
			break
		}
	}
	for _, act := range g.Actions() {
		if act.Type == engine.ActionChooseOwnCard {
			t.Fatal("own choices should be gone once chosen")
		}
	}
	for _, act := range g.Actions() {
		if act.Type == engine.ActionChooseOtherCard && act.Card.Kind == engine.CardRanch {
			if err := g.Execute(act); err != nil {
				t.Fatalf("choose other: %v", err)
			}
			break
		}
	}

	if !a.HasCard(engine.CardRanch) || a.HasCard(engine.CardBakery) {
		t.Fatal("A should have traded Bakery for Ranch")
	}
	if !b.HasCard(engine.CardBakery) || b.HasCard(engine.CardRanch) {
		t.Fatal("B should have traded Ranch for Bakery")
	}
	if len(a.CardsOn(3)) != 0 || len(a.CardsOn(2)) != 1 {
		t.Fatal("the Bakery should leave every activation bucket of A")
	}
	if len(b.CardsOn(3)) != 2 {
		t.Fatalf("B should hold two cards on 3, got %d", len(b.CardsOn(3)))
	}
	if g.Phase != engine.PhasePurchaseDecision {
		t.Fatalf("expected PurchaseDecision, got %s", g.Phase)
	}
}

func TestSoloPendingCardsSkipped(t *testing.T) {
	g := newTestGame(t, 1, dice(6))
	a := g.Players[0]
	give(t, a, engine.CardTVStation, engine.CardBusinessCenter)
	execute(t, g, engine.ActionRollOne)

	if g.Phase != engine.PhasePurchaseDecision {
		t.Fatalf("expected PurchaseDecision, got %s", g.Phase)
	}
	if len(g.PendingCards()) != 0 || len(g.Actions()) == 0 {
		t.Fatalf("expected no pending cards and a purchase choice, got %d pending and %d actions",
			len(g.PendingCards()), len(g.Actions()))
	}
	if a.Money != 3 {
		t.Fatalf("expected 3 coins, got %d", a.Money)
	}
}

func TestTunaBoatSharedRoll(t *testing.T) {
	g := newTestGame(t, 2, dice(3, 4, 5, 5))
	a, b := g.Players[0], g.Players[1]
	for _, p := range g.Players {
		give(t, p, engine.CardTunaBoat)
		build(p, engine.LandmarkHarbor)
	}

	g.PlayerRolled(12, engine.NoReroll, false)
	if a.Money != 10 || b.Money != 10 {
		t.Fatalf("expected both at 10, got %d and %d", a.Money, b.Money)
	}
	if _, ok := g.SharedRoll(); ok {
		t.Fatal("shared roll should be cleared after blue resolution")
	}
	rolls := 0
	for _, e := range g.ConsumeEvents() {
		if e.Type == engine.EventTunaBoatRoll {
			rolls++
		}
	}
	if rolls != 1 {
		t.Fatalf("expected one shared roll, got %d", rolls)
	}

	g.PlayerRolled(13, engine.NoReroll, false)
	if a.Money != 20 || b.Money != 20 {
		t.Fatalf("expected both at 20, got %d and %d", a.Money, b.Money)
	}
	if gen := g.SharedRollGeneration(); gen != 2 {
		t.Fatalf("expected generation 2, got %d", gen)
	}
}

func TestRequiredLandmarkMissing(t *testing.T) {
	g := newTestGame(t, 2, dice())
	a := g.Players[0]
	give(t, a, engine.CardMackerelBoat, engine.CardTunaBoat)

	g.PlayerRolled(8, engine.NoReroll, false)
	g.PlayerRolled(12, engine.NoReroll, false)
	if a.Money != 3 {
		t.Fatalf("boats without Harbor should pay nothing, got %d", a.Money)
	}
	if n := coinEventsFor(g.ConsumeEvents(), a); n != 0 {
		t.Fatalf("expected no payout events, got %d", n)
	}
}

func TestFactoryPayout(t *testing.T) {
	tests := []struct {
		name    string
		ranches int
		want    int
	}{
		{name: "no cows", ranches: 0, want: 3},
		{name: "one cow", ranches: 1, want: 6},
		{name: "three cows", ranches: 3, want: 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 2, dice())
			a := g.Players[0]
			give(t, a, engine.CardCheeseFactory)
			for i := 0; i < tt.ranches; i++ {
				give(t, a, engine.CardRanch)
			}
			g.PlayerRolled(7, engine.NoReroll, false)
			if a.Money != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, a.Money)
			}
			events := coinEventsFor(g.ConsumeEvents(), a)
			if tt.ranches == 0 && events != 0 {
				t.Fatalf("zero matches should emit nothing, got %d events", events)
			}
		})
	}
}

func TestBreadCupBonus(t *testing.T) {
	tests := []struct {
		name     string
		orchards int
		mall     bool
		want     int
	}{
		{name: "two orchards", orchards: 2, want: 5},
		{name: "two orchards with mall", orchards: 2, mall: true, want: 6},
		{name: "no orchards with mall", orchards: 0, mall: true, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 2, dice())
			a := g.Players[0]
			give(t, a, engine.CardFlowerShop)
			for i := 0; i < tt.orchards; i++ {
				give(t, a, engine.CardFlowerOrchard)
			}
			if tt.mall {
				build(a, engine.LandmarkShoppingMall)
			}
			g.PlayerRolled(6, engine.NoReroll, false)
			if a.Money != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, a.Money)
			}
		})
	}
}

func TestBonusUsesOwnerMall(t *testing.T) {
	g := newTestGame(t, 2, dice())
	a, b := g.Players[0], g.Players[1]
	build(a, engine.LandmarkShoppingMall)

	// Wheat Field is neither Bread nor Cup.
	g.PlayerRolled(1, engine.NoReroll, false)
	if a.Money != 4 {
		t.Fatalf("wheat should not get the bonus, got %d", a.Money)
	}
	g.PlayerRolled(2, engine.NoReroll, false)
	if a.Money != 6 {
		t.Fatalf("bakery with mall should pay 2, got %d", a.Money)
	}
	if b.Money != 4 {
		t.Fatalf("B only has Wheat Field paying on 1, got %d", b.Money)
	}
}

func TestRedFees(t *testing.T) {
	tests := []struct {
		name      string
		rollerHas int
		mall      bool
		wantRoll  int
		wantOwner int
	}{
		{name: "plain fee", rollerHas: 3, wantRoll: 3, wantOwner: 4},
		{name: "broke roller", rollerHas: 0, wantRoll: 1, wantOwner: 3},
		{name: "fee with mall", rollerHas: 3, mall: true, wantRoll: 2, wantOwner: 5},
		{name: "capped by roller", rollerHas: 1, mall: true, wantRoll: 1, wantOwner: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 2, dice())
			a, b := g.Players[0], g.Players[1]
			give(t, b, engine.CardCafe)
			if tt.mall {
				build(b, engine.LandmarkShoppingMall)
			}
			a.Money = tt.rollerHas

			// Reds resolve before A's Bakery pays out on the same roll.
			g.PlayerRolled(3, engine.NoReroll, false)
			if a.Money != tt.wantRoll {
				t.Fatalf("roller: expected %d, got %d", tt.wantRoll, a.Money)
			}
			if b.Money != tt.wantOwner {
				t.Fatalf("owner: expected %d, got %d", tt.wantOwner, b.Money)
			}
		})
	}
}

func TestRedOrderCounterclockwise(t *testing.T) {
	g := newTestGame(t, 4, dice())
	order := g.PlayersCounterclockwise(g.Players[1])
	got := ""
	for _, p := range order {
		got += p.ID
	}
	if got != "ADC" {
		t.Fatalf("expected ADC, got %s", got)
	}

	a, b, c, d := g.Players[0], g.Players[1], g.Players[2], g.Players[3]
	for _, p := range []*engine.Player{b, c, d} {
		give(t, p, engine.CardCafe)
	}
	a.Money = 1
	g.PlayerRolled(3, engine.NoReroll, false)
	if d.Money != 4 || c.Money != 3 || b.Money != 3 {
		t.Fatalf("D should be paid first: got B=%d C=%d D=%d", b.Money, c.Money, d.Money)
	}
}

func TestTurnAdvance(t *testing.T) {
	tests := []struct {
		name    string
		d1, d2  int
		wantIdx int
		want    engine.EventType
	}{
		{name: "doubles", d1: 2, d2: 2, wantIdx: 0, want: engine.EventAnotherTurn},
		{name: "no doubles", d1: 2, d2: 3, wantIdx: 1, want: engine.EventTurnChange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 2, dice(tt.d1, tt.d2))
			a := g.Players[0]
			build(a, engine.LandmarkTrainStation, engine.LandmarkAmusementPark)
			if err := g.SetUpAvailableActions(); err != nil {
				t.Fatal(err)
			}
			execute(t, g, engine.ActionRollTwo)
			g.ConsumeEvents()
			execute(t, g, engine.ActionSkipBuy)

			if g.CurrentIdx != tt.wantIdx {
				t.Fatalf("expected player %d, got %d", tt.wantIdx, g.CurrentIdx)
			}
			events := g.ConsumeEvents()
			if last := events[len(events)-1]; last.Type != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, last.Type)
			}
			if g.Phase != engine.PhaseTurnBegin {
				t.Fatalf("expected TurnBegin, got %s", g.Phase)
			}
		})
	}
}

func TestReroll(t *testing.T) {
	g := newTestGame(t, 2, dice(5, 1))
	a := g.Players[0]
	build(a, engine.LandmarkRadioTower)

	execute(t, g, engine.ActionRollOne)
	if g.Phase != engine.PhaseAskReroll {
		t.Fatalf("expected AskReroll, got %s", g.Phase)
	}
	actions := g.Actions()
	if len(actions) != 2 || actions[0].Desc != "Keep your die roll of 5" || actions[1].Desc != "Reroll One Die" {
		t.Fatalf("unexpected reroll actions: %v", actions)
	}
	if err := g.Execute(actions[1]); err != nil {
		t.Fatal(err)
	}
	if g.Phase != engine.PhasePurchaseDecision {
		t.Fatalf("a reroll cannot be rerolled, got %s", g.Phase)
	}
	if a.Money != 4 {
		t.Fatalf("expected Wheat Field payout on the reroll, got %d", a.Money)
	}
}

func TestUnknownDiceCount(t *testing.T) {
	g := newTestGame(t, 2, dice())
	g.Phase = engine.PhaseAskReroll
	g.RolledDice = 3
	err := g.SetUpAvailableActions()
	if !errors.Is(err, engine.ErrUnknownDiceCount) || !engine.IsFatal(err) {
		t.Fatalf("expected fatal ErrUnknownDiceCount, got %v", err)
	}
}

func TestAddToRoll(t *testing.T) {
	g := newTestGame(t, 2, dice(5, 5))
	a := g.Players[0]
	build(a, engine.LandmarkTrainStation, engine.LandmarkHarbor)
	if err := g.SetUpAvailableActions(); err != nil {
		t.Fatal(err)
	}
	execute(t, g, engine.ActionRollTwo)
	if g.Phase != engine.PhaseAskAddToRoll {
		t.Fatalf("expected AskAddToRoll, got %s", g.Phase)
	}
	actions := g.Actions()
	if actions[1].Desc != "Add 2 to roll (result: 12)" {
		t.Fatalf("unexpected add action %q", actions[1].Desc)
	}
	if err := g.Execute(actions[1]); err != nil {
		t.Fatal(err)
	}
	if g.RollResult != 12 {
		t.Fatalf("expected roll 12, got %d", g.RollResult)
	}
	if g.Phase != engine.PhasePurchaseDecision {
		t.Fatalf("expected PurchaseDecision, got %s", g.Phase)
	}
}

func TestCityHallCoinIfBroke(t *testing.T) {
	g := newTestGame(t, 2, dice(4))
	a := g.Players[0]
	a.Money = 0
	execute(t, g, engine.ActionRollOne)
	if a.Money != 1 {
		t.Fatalf("expected 1 coin from City Hall, got %d", a.Money)
	}
	if n := coinEventsFor(g.ConsumeEvents(), a); n != 1 {
		t.Fatalf("expected one City Hall event, got %d", n)
	}
}

func TestAirportSkipBuy(t *testing.T) {
	g := newTestGame(t, 2, dice(4))
	a := g.Players[0]
	build(a, engine.LandmarkAirport)
	execute(t, g, engine.ActionRollOne)
	execute(t, g, engine.ActionSkipBuy)
	if a.Money != 13 {
		t.Fatalf("expected 13 coins, got %d", a.Money)
	}
}

func TestBuyCard(t *testing.T) {
	g := newTestGame(t, 2, dice(4))
	a := g.Players[0]
	execute(t, g, engine.ActionRollOne)

	var before int
	for c, n := range g.Market.CardsAvailable() {
		if c.Kind == engine.CardCafe {
			before = n
		}
	}
	for _, act := range g.Actions() {
		if act.Type == engine.ActionBuyCard && act.Card.Kind == engine.CardCafe {
			if act.Desc != "Buy Card: $2 for Cafe (1 coin) [3] [Cup]" {
				t.Fatalf("unexpected description %q", act.Desc)
			}
			if err := g.Execute(act); err != nil {
				t.Fatal(err)
			}
		}
	}
	if !a.HasCard(engine.CardCafe) || a.Money != 1 {
		t.Fatalf("expected A to own a Cafe with 1 coin left, got %d", a.Money)
	}
	for c, n := range g.Market.CardsAvailable() {
		if c.Kind == engine.CardCafe && n != before-1 {
			t.Fatalf("expected %d Cafes left, got %d", before-1, n)
		}
	}
	if g.CurrentIdx != 1 || g.Phase != engine.PhaseTurnBegin {
		t.Fatalf("expected B's turn to begin, got %d in %s", g.CurrentIdx, g.Phase)
	}
}

func TestBuyCardRechecksMoney(t *testing.T) {
	g := newTestGame(t, 2, dice(4))
	a := g.Players[0]
	execute(t, g, engine.ActionRollOne)

	var buy *engine.Action
	for _, act := range g.Actions() {
		if act.Type == engine.ActionBuyCard && act.Card.Kind == engine.CardCafe {
			buy = act
		}
	}
	if buy == nil {
		t.Fatal("expected a buy action for the Cafe")
	}
	a.Money = 1
	err := g.Execute(buy)
	if !errors.Is(err, engine.ErrNotEnoughMoney) || !engine.IsFatal(err) {
		t.Fatalf("expected fatal ErrNotEnoughMoney, got %v", err)
	}
	if a.Money != 1 || a.HasCard(engine.CardCafe) {
		t.Fatal("failed purchase should leave the player untouched")
	}
}

func TestMajorOwnedNotOffered(t *testing.T) {
	g := newTestGame(t, 2, dice(4))
	a := g.Players[0]
	give(t, a, engine.CardStadium)
	a.Money = 50
	execute(t, g, engine.ActionRollOne)
	for _, act := range g.Actions() {
		if act.Type == engine.ActionBuyCard && act.Card.Kind == engine.CardStadium {
			t.Fatal("a second Stadium should not be offered")
		}
	}
}

func TestMarketExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	market := mocks.NewMockMarket(ctrl)
	cafe := engine.MustCard(engine.CardCafe)
	market.EXPECT().CardsAvailable().Return(map[*engine.Card]int{cafe: 1}).AnyTimes()
	market.EXPECT().TakeCard(cafe).Return(nil, engine.ErrMarketExhausted)

	players := []*engine.Player{engine.NewPlayer("A", "Player1"), engine.NewPlayer("B", "Player2")}
	cfg := engine.DefaultConfig()
	cfg.Dice = dice(4)
	cfg.Market = func([]*engine.Card, engine.EventSink) engine.Market { return market }
	g, err := engine.NewGame(players, cfg)
	if err != nil {
		t.Fatal(err)
	}
	execute(t, g, engine.ActionRollOne)

	var buy *engine.Action
	for _, act := range g.Actions() {
		if act.Type == engine.ActionBuyCard {
			buy = act
		}
	}
	if buy == nil {
		t.Fatal("expected a buy action for the Cafe")
	}
	err = g.Execute(buy)
	if !errors.Is(err, engine.ErrMarketExhausted) {
		t.Fatalf("expected ErrMarketExhausted, got %v", err)
	}
	if engine.IsFatal(err) {
		t.Fatal("market exhaustion should be recoverable")
	}
	if players[0].Money != 3 || players[0].HasCard(engine.CardCafe) {
		t.Fatal("failed purchase should leave the player untouched")
	}
	if g.Phase != engine.PhasePurchaseDecision || len(g.Actions()) == 0 {
		t.Fatal("actions should be regenerated for another purchase attempt")
	}
}

func TestStaleAction(t *testing.T) {
	g := newTestGame(t, 2, dice(4))
	a := g.Actions()[0]
	gen := g.Generation()
	if err := g.Execute(a); err != nil {
		t.Fatal(err)
	}
	err := g.Execute(a)
	if !errors.Is(err, engine.ErrStaleAction) || !engine.IsFatal(err) {
		t.Fatalf("expected fatal ErrStaleAction, got %v", err)
	}
	if err := g.ExecuteIndex(gen, 0); !errors.Is(err, engine.ErrStaleAction) {
		t.Fatalf("expected ErrStaleAction for old generation, got %v", err)
	}
	if err := g.ExecuteIndex(g.Generation(), 99); !errors.Is(err, engine.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestVictory(t *testing.T) {
	g := newTestGame(t, 2, dice(1))
	a := g.Players[0]
	execute(t, g, engine.ActionRollOne)

	build(a, engine.LandmarkHarbor, engine.LandmarkTrainStation, engine.LandmarkShoppingMall,
		engine.LandmarkAmusementPark, engine.LandmarkRadioTower)
	a.Money = 100
	if err := g.SetUpAvailableActions(); err != nil {
		t.Fatal(err)
	}
	g.ConsumeEvents()
	execute(t, g, engine.ActionBuyLandmark)

	if g.Phase != engine.PhaseGameOver {
		t.Fatalf("expected GameOver, got %s", g.Phase)
	}
	if g.CurrentIdx != 0 {
		t.Fatal("turn should not advance after victory")
	}
	for _, e := range g.ConsumeEvents() {
		if e.Type == engine.EventTurnChange {
			t.Fatal("no turn change event expected after victory")
		}
	}
	if len(g.Actions()) != 0 {
		t.Fatal("no actions after the game is over")
	}
	if g.Winner() != a {
		t.Fatal("expected A to win")
	}
	standings := g.Standings()
	if standings[0].PlayerID != a.ID || standings[0].Rank != 1 || !standings[0].Winner {
		t.Fatalf("unexpected standings %+v", standings)
	}
}

func TestNonFinalLandmark(t *testing.T) {
	g := newTestGame(t, 2, dice(1))
	a := g.Players[0]
	execute(t, g, engine.ActionRollOne)

	var harbor *engine.Action
	for _, act := range g.Actions() {
		if act.Type == engine.ActionBuyLandmark && act.Landmark.Kind == engine.LandmarkHarbor {
			harbor = act
		}
	}
	if harbor == nil {
		t.Fatalf("expected Harbor to be offered with %d coins", a.Money)
	}
	if err := g.Execute(harbor); err != nil {
		t.Fatal(err)
	}
	if !a.HasConstructed(engine.LandmarkHarbor) || a.Money != 2 {
		t.Fatalf("expected Harbor built with 2 coins left, got %d", a.Money)
	}
	if g.Phase != engine.PhaseTurnBegin || g.CurrentIdx != 1 {
		t.Fatalf("expected B's turn to begin, got %d in %s", g.CurrentIdx, g.Phase)
	}
	if g.Winner() != nil {
		t.Fatal("nobody has won yet")
	}
}

func TestViewFor(t *testing.T) {
	g := newTestGame(t, 2, dice())
	mine := g.ViewFor("A")
	if !mine.IsMyTurn || len(mine.Actions) != 1 {
		t.Fatalf("current player should see their action, got %+v", mine.Actions)
	}
	theirs := g.ViewFor("B")
	if theirs.IsMyTurn || len(theirs.Actions) != 0 {
		t.Fatal("other players should not see actions")
	}
	if len(mine.Market) == 0 || mine.State != "Beginning of turn" {
		t.Fatalf("unexpected public view %+v", mine.PublicViewData)
	}
}
