package engine

import "fmt"

const startingMoney = 3

// Player holds one player's ledger: coins, establishments and landmarks.
type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Money         int    `json:"money"`
	RolledDoubles bool   `json:"rolled_doubles"`

	cards        []*Card
	byActivation map[int][]*Card
	landmarks    []*Landmark
	abilities    [abilityCount]*Landmark
	game         *Game
}

// NewPlayer creates a player with starting coins and the two starter cards.
func NewPlayer(id, name string) *Player {
	p := &Player{
		ID:           id,
		Name:         name,
		Money:        startingMoney,
		byActivation: make(map[int][]*Card),
	}
	p.attach(MustCard(CardWheatField))
	p.attach(MustCard(CardBakery))
	return p
}

// setupLandmarks gives the player one landmark per kind, sorted by cost.
func (p *Player) setupLandmarks(kinds []LandmarkKind) error {
	p.landmarks = p.landmarks[:0]
	p.abilities = [abilityCount]*Landmark{}
	for _, k := range kinds {
		l, err := newLandmark(k, p)
		if err != nil {
			return err
		}
		p.landmarks = append(p.landmarks, l)
	}
	SortLandmarks(p.landmarks)
	return nil
}

// Cards returns the player's establishments in acquisition order.
func (p *Player) Cards() []*Card {
	out := make([]*Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// CardsOn returns the establishments triggered by a roll total, in acquisition order.
func (p *Player) CardsOn(roll int) []*Card {
	bucket := p.byActivation[roll]
	out := make([]*Card, len(bucket))
	copy(out, bucket)
	return out
}

// Landmarks returns the player's landmarks sorted by cost.
func (p *Player) Landmarks() []*Landmark {
	out := make([]*Landmark, len(p.landmarks))
	copy(out, p.landmarks)
	return out
}

// Landmark returns the player's landmark of the given kind, or nil.
func (p *Player) Landmark(kind LandmarkKind) *Landmark {
	for _, l := range p.landmarks {
		if l.Kind == kind {
			return l
		}
	}
	return nil
}

// HasConstructed reports whether the player has built the given landmark.
func (p *Player) HasConstructed(kind LandmarkKind) bool {
	l := p.Landmark(kind)
	return l != nil && l.Constructed
}

// Ability returns the landmark granting the ability, or nil if the player lacks it.
func (p *Player) Ability(a Ability) *Landmark {
	if a < 0 || a >= abilityCount {
		return nil
	}
	return p.abilities[a]
}

// HasCard reports whether the player owns a card of the given kind.
func (p *Player) HasCard(kind CardKind) bool {
	return p.CountKind(kind) > 0
}

// CountKind counts the player's cards of the given kind.
func (p *Player) CountKind(kind CardKind) int {
	n := 0
	for _, c := range p.cards {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// CountFamily counts the player's cards of the given family.
func (p *Player) CountFamily(f Family) int {
	n := 0
	for _, c := range p.cards {
		if c.Family == f {
			n++
		}
	}
	return n
}

// Holds reports whether this exact card instance is in the player's collection.
func (p *Player) Holds(card *Card) bool {
	for _, c := range p.cards {
		if c == card {
			return true
		}
	}
	return false
}

// AddCard gives the card to the player, detaching it from any previous owner.
func (p *Player) AddCard(card *Card) error {
	if card.owner == p {
		return nil
	}
	if prev := card.owner; prev != nil {
		if err := prev.RemoveCard(card); err != nil {
			return err
		}
	}
	p.attach(card)
	return nil
}

func (p *Player) attach(card *Card) {
	card.owner = p
	p.cards = append(p.cards, card)
	for _, n := range card.activations {
		p.byActivation[n] = append(p.byActivation[n], card)
	}
}

// RemoveCard takes the card out of the player's collection and activation index.
func (p *Player) RemoveCard(card *Card) error {
	idx := -1
	for i, c := range p.cards {
		if c == card {
			idx = i
			break
		}
	}
	if idx < 0 {
		return invariantf(ErrCardNotOwned, "%s does not hold %s", p.Name, card.Name)
	}
	p.cards = append(p.cards[:idx], p.cards[idx+1:]...)
	for _, n := range card.activations {
		p.byActivation[n] = removeCard(p.byActivation[n], card)
		if len(p.byActivation[n]) == 0 {
			delete(p.byActivation, n)
		}
	}
	card.owner = nil
	return nil
}

func removeCard(cards []*Card, card *Card) []*Card {
	for i, c := range cards {
		if c == card {
			return append(cards[:i], cards[i+1:]...)
		}
	}
	return cards
}

// ProcessRoll resolves every owned card of the given color that triggers on roll.
func (p *Player) ProcessRoll(roll int, color Color, rolledBy *Player) {
	for _, c := range p.CardsOn(roll) {
		if c.Color != color {
			continue
		}
		p.game.resolveCard(c, rolledBy)
	}
}

// HasWon reports whether every landmark of the player is constructed.
func (p *Player) HasWon() bool {
	if len(p.landmarks) == 0 {
		return false
	}
	for _, l := range p.landmarks {
		if !l.Constructed {
			return false
		}
	}
	return true
}

// ConstructedCount counts built landmarks.
func (p *Player) ConstructedCount() int {
	n := 0
	for _, l := range p.landmarks {
		if l.Constructed {
			n++
		}
	}
	return n
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.Money)
}
