package engine

import "fmt"

//go:generate go tool mockgen -destination=./mocks/market_mock.go -package=mocks . Market

// Market is the supply of establishments players buy from.
type Market interface {
	// CardsAvailable maps one representative card per available kind to its pile size.
	CardsAvailable() map[*Card]int
	// TakeCard removes a card of the same kind as card from the supply.
	TakeCard(card *Card) (*Card, error)
}

// MarketFactory builds a market from a freshly generated deck.
type MarketFactory func(deck []*Card, events EventSink) Market

// piles groups supply cards by kind, remembering the order kinds appeared in.
type piles struct {
	order  []CardKind
	byKind map[CardKind][]*Card
}

func newPiles() *piles {
	return &piles{byKind: make(map[CardKind][]*Card)}
}

func (p *piles) add(c *Card) {
	if _, ok := p.byKind[c.Kind]; !ok {
		p.order = append(p.order, c.Kind)
	}
	p.byKind[c.Kind] = append(p.byKind[c.Kind], c)
}

func (p *piles) take(kind CardKind) (*Card, error) {
	pile, ok := p.byKind[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMarketExhausted, kind)
	}
	c := pile[len(pile)-1]
	pile = pile[:len(pile)-1]
	if len(pile) == 0 {
		delete(p.byKind, kind)
		for i, k := range p.order {
			if k == kind {
				p.order = append(p.order[:i], p.order[i+1:]...)
				break
			}
		}
	} else {
		p.byKind[kind] = pile
	}
	return c, nil
}

func (p *piles) available(into map[*Card]int) {
	for _, k := range p.order {
		pile := p.byKind[k]
		into[pile[0]] = len(pile)
	}
}

// BaseMarket makes every card of the deck available at once.
type BaseMarket struct {
	piles *piles
}

// NewBaseMarket is a MarketFactory for BaseMarket.
func NewBaseMarket(deck []*Card, _ EventSink) Market {
	m := &BaseMarket{piles: newPiles()}
	for _, c := range deck {
		m.piles.add(c)
	}
	return m
}

func (m *BaseMarket) CardsAvailable() map[*Card]int {
	out := make(map[*Card]int)
	m.piles.available(out)
	return out
}

func (m *BaseMarket) TakeCard(card *Card) (*Card, error) {
	return m.piles.take(card.Kind)
}

// HarborMarket keeps a limited number of distinct piles open, dealing from
// a shuffled deck whenever a pile runs out.
type HarborMarket struct {
	piles  *piles
	deck   *Deck
	limit  int
	events EventSink
}

// DefaultPileLimit is the number of open piles in a HarborMarket.
const DefaultPileLimit = 10

// NewHarborMarket returns a MarketFactory for a HarborMarket with limit piles.
func NewHarborMarket(s Shuffler, limit int) MarketFactory {
	if s == nil {
		s = globalShuffler{}
	}
	return func(deck []*Card, events EventSink) Market {
		return newHarborMarket(deck, events, s, limit)
	}
}

func newHarborMarket(deck []*Card, events EventSink, s Shuffler, limit int) *HarborMarket {
	m := &HarborMarket{
		piles:  newPiles(),
		deck:   NewDeck(deck, s),
		limit:  limit,
		events: events,
	}
	m.refill()
	return m
}

func (m *HarborMarket) refill() {
	for m.deck.Len() > 0 && len(m.piles.order) < m.limit {
		c := m.deck.Draw()
		if m.events != nil {
			m.events.AddEvent(MarketCardAddedEvent(c))
		}
		m.piles.add(c)
	}
}

func (m *HarborMarket) CardsAvailable() map[*Card]int {
	out := make(map[*Card]int)
	m.piles.available(out)
	return out
}

func (m *HarborMarket) TakeCard(card *Card) (*Card, error) {
	c, err := m.piles.take(card.Kind)
	if err != nil {
		return nil, err
	}
	m.refill()
	return c, nil
}

// DeckLen returns the number of cards not yet dealt.
func (m *HarborMarket) DeckLen() int {
	return m.deck.Len()
}

// BrightLightsMarket keeps three separate supplies: five low piles
// (activating on 1-6), two major piles, and five high piles.
type BrightLightsMarket struct {
	low, major, high *HarborMarket
}

// NewBrightLightsMarket returns a MarketFactory for a BrightLightsMarket.
func NewBrightLightsMarket(s Shuffler) MarketFactory {
	if s == nil {
		s = globalShuffler{}
	}
	return func(deck []*Card, events EventSink) Market {
		var low, major, high []*Card
		for _, c := range deck {
			switch {
			case c.IsMajor():
				major = append(major, c)
			case c.activations[0] > 6:
				high = append(high, c)
			default:
				low = append(low, c)
			}
		}
		return &BrightLightsMarket{
			low:   newHarborMarket(low, events, s, 5),
			major: newHarborMarket(major, events, s, 2),
			high:  newHarborMarket(high, events, s, 5),
		}
	}
}

func (m *BrightLightsMarket) pick(card *Card) *HarborMarket {
	switch {
	case card.IsMajor():
		return m.major
	case card.activations[0] > 6:
		return m.high
	default:
		return m.low
	}
}

func (m *BrightLightsMarket) CardsAvailable() map[*Card]int {
	out := make(map[*Card]int)
	for _, sub := range []*HarborMarket{m.low, m.major, m.high} {
		sub.piles.available(out)
	}
	return out
}

func (m *BrightLightsMarket) TakeCard(card *Card) (*Card, error) {
	return m.pick(card).TakeCard(card)
}

// MarketByName resolves a configured market name.
func MarketByName(name string, s Shuffler) (MarketFactory, error) {
	switch name {
	case "base", "":
		return NewBaseMarket, nil
	case "harbor":
		return NewHarborMarket(s, DefaultPileLimit), nil
	case "bright_lights":
		return NewBrightLightsMarket(s), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarket, name)
	}
}
