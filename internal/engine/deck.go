package engine

import "math/rand/v2"

// Shuffler permutes n elements. *rand.Rand and *RandomDice satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Deck is a face-down draw pile of establishment cards.
type Deck struct {
	cards []*Card
}

// NewDeck creates a deck from the given cards, shuffled when s is non-nil.
func NewDeck(cards []*Card, s Shuffler) *Deck {
	d := &Deck{cards: make([]*Card, len(cards))}
	copy(d.cards, cards)
	if s != nil {
		d.Shuffle(s)
	}
	return d
}

func (d *Deck) Shuffle(s Shuffler) {
	s.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card, or nil when the deck is empty.
func (d *Deck) Draw() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}
