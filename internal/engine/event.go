package engine

import (
	"fmt"
	"strings"
)

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventCoinsReceived   EventType = "coins_received"
	EventRolledOneDie    EventType = "rolled_one_die"
	EventRolledTwoDice   EventType = "rolled_two_dice"
	EventKeptRoll        EventType = "kept_roll"
	EventAddedToRoll     EventType = "added_to_roll"
	EventDidNotBuy       EventType = "did_not_buy"
	EventBoughtCard      EventType = "bought_card"
	EventConstructed     EventType = "constructed_landmark"
	EventChoseOwnCard    EventType = "chose_own_card"
	EventChoseOtherCard  EventType = "chose_other_card"
	EventTradedCard      EventType = "traded_card"
	EventTunaBoatRoll    EventType = "tuna_boat_roll"
	EventAnotherTurn     EventType = "another_turn"
	EventTurnChange      EventType = "turn_change"
	EventPlayerWon       EventType = "player_won"
	EventMarketCardAdded EventType = "market_card_added"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type    EventType   `json:"type"`
	Player  string      `json:"player,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e Event) String() string {
	return e.Message
}

// EventSink receives events from collaborators such as markets.
type EventSink interface {
	AddEvent(e Event)
}

func plural(n int, label string) string {
	if n == 1 {
		return "1 " + label
	}
	return fmt.Sprintf("%d %ss", n, label)
}

// coinsEvent describes a payout. from, cardName and landmarkName are optional.
func coinsEvent(p *Player, n int, from *Player, cardName, landmarkName string) Event {
	parts := []string{fmt.Sprintf("Player %q received %s", p.Name, plural(n, "coin"))}
	data := map[string]interface{}{"coins": n, "total": p.Money}
	if from != nil {
		parts = append(parts, fmt.Sprintf("from %q", from.Name))
		data["from"] = from.ID
	}
	if landmarkName != "" {
		parts = append(parts, fmt.Sprintf("due to %q", landmarkName))
		data["landmark"] = landmarkName
	}
	if cardName != "" {
		parts = append(parts, "for a "+cardName)
		data["card"] = cardName
	}
	parts = append(parts, fmt.Sprintf("(new total: %d)", p.Money))
	return Event{
		Type:    EventCoinsReceived,
		Player:  p.ID,
		Message: strings.Join(parts, " "),
		Data:    data,
	}
}

func airportEvent(p *Player) Event {
	return Event{
		Type:    EventCoinsReceived,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q received 10 coins for not buying anything (new total: %d)", p.Name, p.Money),
		Data:    map[string]interface{}{"coins": 10, "total": p.Money, "landmark": "Airport"},
	}
}

func rolledOneEvent(p *Player, roll int) Event {
	return Event{
		Type:    EventRolledOneDie,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q rolled one die and got a %d", p.Name, roll),
		Data:    map[string]interface{}{"roll": roll},
	}
}

func rolledTwoEvent(p *Player, d1, d2 int) Event {
	return Event{
		Type:    EventRolledTwoDice,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q rolled two dice and got a %d (%d & %d)", p.Name, d1+d2, d1, d2),
		Data:    map[string]interface{}{"roll": d1 + d2, "dice": []int{d1, d2}},
	}
}

func keptRollEvent(p *Player, roll int) Event {
	return Event{
		Type:    EventKeptRoll,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q kept the die roll of %d", p.Name, roll),
	}
}

func addedToRollEvent(p *Player, added, roll int) Event {
	return Event{
		Type:    EventAddedToRoll,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q added %d to roll, to make the roll: %d", p.Name, added, roll),
	}
}

func didNotBuyEvent(p *Player) Event {
	return Event{
		Type:    EventDidNotBuy,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q opted not to buy anything.", p.Name),
	}
}

func boughtCardEvent(p *Player, c *Card) Event {
	return Event{
		Type:    EventBoughtCard,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q bought card %q for $%d.", p.Name, c.Name, c.Cost),
		Data:    map[string]interface{}{"card": c.Name, "cost": c.Cost},
	}
}

func constructedEvent(p *Player, l *Landmark) Event {
	return Event{
		Type:    EventConstructed,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q constructed landmark %q for $%d.", p.Name, l.Name, l.Cost),
		Data:    map[string]interface{}{"landmark": l.Name, "cost": l.Cost},
	}
}

func choseOwnCardEvent(p *Player, c, cause *Card) Event {
	return Event{
		Type:    EventChoseOwnCard,
		Player:  p.ID,
		Message: fmt.Sprintf("%s chose own %q card for trade (from %s)", p.Name, c.Name, cause.Name),
	}
}

func choseOtherCardEvent(p *Player, c, cause *Card) Event {
	return Event{
		Type:    EventChoseOtherCard,
		Player:  p.ID,
		Message: fmt.Sprintf("%s chose %s's card %q card for trade (from %s)", p.Name, c.owner.Name, c.Name, cause.Name),
	}
}

func tradedEvent(p *Player, own *Card, other *Player, theirs *Card) Event {
	return Event{
		Type:    EventTradedCard,
		Player:  p.ID,
		Message: fmt.Sprintf("%s traded card %q for %s's card %q", p.Name, own.Name, other.Name, theirs.Name),
		Data:    map[string]interface{}{"gave": own.Name, "received": theirs.Name, "with": other.ID},
	}
}

func tunaRollEvent(d1, d2 int) Event {
	return Event{
		Type:    EventTunaBoatRoll,
		Message: fmt.Sprintf("Tuna Boat roll results: %d + %d = %d", d1, d2, d1+d2),
		Data:    map[string]interface{}{"dice": []int{d1, d2}, "total": d1 + d2},
	}
}

func anotherTurnEvent(p *Player) Event {
	return Event{
		Type:    EventAnotherTurn,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q takes another turn because of rolling doubles", p.Name),
	}
}

func turnChangeEvent(p *Player) Event {
	return Event{
		Type:    EventTurnChange,
		Player:  p.ID,
		Message: fmt.Sprintf("Turn change: player %q", p.Name),
	}
}

func playerWonEvent(p *Player) Event {
	return Event{
		Type:    EventPlayerWon,
		Player:  p.ID,
		Message: fmt.Sprintf("Player %q has constructed all landmarks and won the game!", p.Name),
	}
}

// MarketCardAddedEvent reports a new pile opening in a market.
func MarketCardAddedEvent(c *Card) Event {
	return Event{
		Type:    EventMarketCardAdded,
		Message: "Added to the market: " + c.Name,
		Data:    map[string]interface{}{"card": c.Name},
	}
}
