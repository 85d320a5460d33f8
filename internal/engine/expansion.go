package engine

import (
	"fmt"
	"strings"
)

// DeckEntry is a quantity of one regular card kind in an expansion.
type DeckEntry struct {
	Count int
	Kind  CardKind
}

// Expansion describes the cards and landmarks a game is played with.
type Expansion struct {
	Name      string
	Regular   []DeckEntry
	Major     []CardKind // one copy per player
	Landmarks []LandmarkKind
}

// ExpansionBase is the base game.
var ExpansionBase = Expansion{
	Name: "Base",
	Regular: []DeckEntry{
		{6, CardWheatField},
		{6, CardRanch},
		{6, CardBakery},
		{6, CardCafe},
		{6, CardConvenienceStore},
		{6, CardForest},
		{6, CardCheeseFactory},
		{6, CardFurnitureFactory},
		{6, CardMine},
		{6, CardFamilyRestaurant},
		{6, CardAppleOrchard},
		{6, CardFruitMarket},
	},
	Major: []CardKind{CardStadium, CardTVStation, CardBusinessCenter},
	Landmarks: []LandmarkKind{
		LandmarkTrainStation,
		LandmarkShoppingMall,
		LandmarkAmusementPark,
		LandmarkRadioTower,
	},
}

// ExpansionHarbor adds the Harbor cards and landmarks. Combine it with
// ExpansionBase using Add.
var ExpansionHarbor = Expansion{
	Name: "Harbor",
	Regular: []DeckEntry{
		{6, CardSushiBar},
		{6, CardFlowerOrchard},
		{6, CardFlowerShop},
		{6, CardPizzaJoint},
		{6, CardHamburgerStand},
		{6, CardMackerelBoat},
		{6, CardFoodWarehouse},
		{6, CardTunaBoat},
	},
	Major:     []CardKind{CardPublisher, CardTaxOffice},
	Landmarks: []LandmarkKind{LandmarkCityHall, LandmarkHarbor, LandmarkAirport},
}

// Add combines two expansions into one.
func (e Expansion) Add(o Expansion) Expansion {
	return Expansion{
		Name:      e.Name + " + " + o.Name,
		Regular:   append(append([]DeckEntry(nil), e.Regular...), o.Regular...),
		Major:     append(append([]CardKind(nil), e.Major...), o.Major...),
		Landmarks: append(append([]LandmarkKind(nil), e.Landmarks...), o.Landmarks...),
	}
}

// GenerateDeck stamps fresh cards for a game with numPlayers players.
func (e Expansion) GenerateDeck(numPlayers int) ([]*Card, error) {
	var deck []*Card
	for _, entry := range e.Regular {
		for i := 0; i < entry.Count; i++ {
			c, err := NewCard(entry.Kind)
			if err != nil {
				return nil, err
			}
			deck = append(deck, c)
		}
	}
	for _, kind := range e.Major {
		for i := 0; i < numPlayers; i++ {
			c, err := NewCard(kind)
			if err != nil {
				return nil, err
			}
			deck = append(deck, c)
		}
	}
	return deck, nil
}

func (e Expansion) String() string {
	return e.Name
}

// ExpansionByName resolves a configured expansion name.
func ExpansionByName(name string) (Expansion, error) {
	switch strings.ToLower(name) {
	case "base":
		return ExpansionBase, nil
	case "harbor", "":
		return ExpansionBase.Add(ExpansionHarbor), nil
	default:
		return Expansion{}, fmt.Errorf("%w: %q", ErrUnknownExpansion, name)
	}
}
