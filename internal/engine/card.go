package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Color determines when a card resolves during a roll.
type Color int

const (
	ColorBlue   Color = iota // anyone's roll
	ColorGreen               // own roll
	ColorRed                 // opponents' rolls, paid by the roller
	ColorPurple              // own roll, major establishments
)

var colorNames = map[Color]string{
	ColorBlue:   "Blue",
	ColorGreen:  "Green",
	ColorRed:    "Red",
	ColorPurple: "Purple",
}

func (c Color) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return "Unknown"
}

// Family is the category a card belongs to.
type Family int

const (
	FamilyWheat Family = iota
	FamilyCow
	FamilyGear
	FamilyBread
	FamilyFactory
	FamilyFruit
	FamilyCup
	FamilyMajor
	FamilyBoat
)

var familyNames = map[Family]string{
	FamilyWheat:   "Wheat",
	FamilyCow:     "Cow",
	FamilyGear:    "Gear",
	FamilyBread:   "Bread",
	FamilyFactory: "Factory",
	FamilyFruit:   "Fruit",
	FamilyCup:     "Cup",
	FamilyMajor:   "Major",
	FamilyBoat:    "Boat",
}

func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return "Unknown"
}

// Card is one establishment instance. Two cards of the same Kind are
// interchangeable for rules purposes but are distinct objects.
type Card struct {
	Kind      CardKind `json:"kind"`
	Name      string   `json:"name"`
	ShortDesc string   `json:"short_desc"`
	Desc      string   `json:"desc"`
	Cost      int      `json:"cost"`
	Color     Color    `json:"color"`
	Family    Family   `json:"family"`

	// Required is the landmark the owner must have built for the card to pay.
	Required *LandmarkKind `json:"required,omitempty"`

	activations []int
	rule        PayoutRule
	owner       *Player
}

// Activations returns the roll totals that trigger the card.
func (c *Card) Activations() []int {
	out := make([]int, len(c.activations))
	copy(out, c.activations)
	return out
}

// ActivatesOn reports whether the card triggers on the given roll total.
func (c *Card) ActivatesOn(roll int) bool {
	for _, n := range c.activations {
		if n == roll {
			return true
		}
	}
	return false
}

// Owner returns the player holding the card, or nil while it sits in the supply.
func (c *Card) Owner() *Player {
	return c.owner
}

// Rule returns the payout rule variant of the card.
func (c *Card) Rule() PayoutRule {
	return c.rule
}

// IsMajor reports whether the card is a purple major establishment.
func (c *Card) IsMajor() bool {
	return c.Family == FamilyMajor
}

// ActivationLabel renders the activation numbers as "2-3" or "11-12".
func (c *Card) ActivationLabel() string {
	parts := make([]string, len(c.activations))
	for i, n := range c.activations {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, "-")
}

func (c *Card) String() string {
	return c.Name
}

// CardLess orders cards by first activation, then by fewer activations,
// then by color, then by name.
func CardLess(a, b *Card) bool {
	if a.activations[0] != b.activations[0] {
		return a.activations[0] < b.activations[0]
	}
	if len(a.activations) != len(b.activations) {
		return len(a.activations) < len(b.activations)
	}
	if a.Color != b.Color {
		return a.Color < b.Color
	}
	return a.Name < b.Name
}

// SortCards sorts cards in place using CardLess.
func SortCards(cards []*Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return CardLess(cards[i], cards[j])
	})
}

// PayoutRule is the closed set of payout behaviors a card can have.
type PayoutRule interface {
	payoutRule()
}

// FixedPayout pays the owner a flat amount from the bank.
type FixedPayout struct {
	Amount int
}

// FamilyFactoryPayout pays Rate for every card of Target family the owner holds.
type FamilyFactoryPayout struct {
	Rate   int
	Target Family
}

// KindFactory pays Rate for every card of Target kind the owner holds.
type KindFactory struct {
	Rate   int
	Target CardKind
}

// BasicFee transfers Fee coins from the player who rolled to the owner.
type BasicFee struct {
	Fee int
}

// StealFromAll takes Amount coins from every other player.
type StealFromAll struct {
	Amount int
}

// PublisherSteal takes one coin per Cup or Bread card from every other player.
type PublisherSteal struct{}

// TaxSteal takes half the coins of every other player holding at least Threshold.
type TaxSteal struct {
	Threshold int
}

// ChoosePlayerSteal lets the owner pick one opponent to take Amount coins from.
type ChoosePlayerSteal struct {
	Amount int
}

// TradeCards lets the owner swap one of their non-major cards with an opponent's.
type TradeCards struct {
	trade *tradeState
}

// SharedRoll pays the owner the total of a two-dice roll shared by every
// card of this kind resolving in the same roll.
type SharedRoll struct{}

// tradeState holds the two selections of a Business Center trade.
type tradeState struct {
	own   *Card
	other *Card
}

func (FixedPayout) payoutRule()         {}
func (FamilyFactoryPayout) payoutRule() {}
func (KindFactory) payoutRule()         {}
func (BasicFee) payoutRule()            {}
func (StealFromAll) payoutRule()        {}
func (PublisherSteal) payoutRule()      {}
func (TaxSteal) payoutRule()            {}
func (ChoosePlayerSteal) payoutRule()   {}
func (TradeCards) payoutRule()          {}
func (SharedRoll) payoutRule()          {}

// hasBreadCupBonus reports whether the owner's Shopping Mall boosts this card.
func (c *Card) hasBreadCupBonus() bool {
	if c.owner == nil || c.owner.Ability(AbilityBreadCupBonus) == nil {
		return false
	}
	return c.Family == FamilyBread || c.Family == FamilyCup
}
