package engine

import "fmt"

// CardKind identifies one establishment type in the catalog.
type CardKind int

const (
	CardWheatField CardKind = iota + 1
	CardRanch
	CardBakery
	CardCafe
	CardConvenienceStore
	CardForest
	CardStadium
	CardTVStation
	CardBusinessCenter
	CardCheeseFactory
	CardFurnitureFactory
	CardMine
	CardFamilyRestaurant
	CardAppleOrchard
	CardFruitMarket
	CardSushiBar
	CardFlowerOrchard
	CardFlowerShop
	CardPizzaJoint
	CardPublisher
	CardTaxOffice
	CardHamburgerStand
	CardMackerelBoat
	CardFoodWarehouse
	CardTunaBoat
)

// cardTemplate is the immutable catalog entry a Card is stamped from.
type cardTemplate struct {
	name        string
	shortDesc   string
	desc        string
	cost        int
	color       Color
	family      Family
	activations []int
	required    *LandmarkKind
	rule        func() PayoutRule
}

func requires(k LandmarkKind) *LandmarkKind { return &k }

func fixed(n int) func() PayoutRule { return func() PayoutRule { return FixedPayout{Amount: n} } }

func fee(n int) func() PayoutRule { return func() PayoutRule { return BasicFee{Fee: n} } }

var catalog = map[CardKind]cardTemplate{
	CardWheatField: {
		name: "Wheat Field", shortDesc: "1 coin", cost: 1,
		desc:  "Get 1 coin from the bank, on anyone's turn.",
		color: ColorBlue, family: FamilyWheat, activations: []int{1}, rule: fixed(1),
	},
	CardRanch: {
		name: "Ranch", shortDesc: "1 coin", cost: 1,
		desc:  "Get 1 coin from the bank, on anyone's turn.",
		color: ColorBlue, family: FamilyCow, activations: []int{2}, rule: fixed(1),
	},
	CardBakery: {
		name: "Bakery", shortDesc: "1 coin", cost: 1,
		desc:  "Get 1 coin from the bank, on your turn only.",
		color: ColorGreen, family: FamilyBread, activations: []int{2, 3}, rule: fixed(1),
	},
	CardCafe: {
		name: "Cafe", shortDesc: "1 coin", cost: 2,
		desc:  "Get 1 coin from the player who rolled the dice.",
		color: ColorRed, family: FamilyCup, activations: []int{3}, rule: fee(1),
	},
	CardConvenienceStore: {
		name: "Convenience Store", shortDesc: "3 coins", cost: 2,
		desc:  "Get 3 coins from the bank, on your turn only.",
		color: ColorGreen, family: FamilyBread, activations: []int{4}, rule: fixed(3),
	},
	CardForest: {
		name: "Forest", shortDesc: "1 coin", cost: 3,
		desc:  "Get 1 coin from the bank, on anyone's turn.",
		color: ColorBlue, family: FamilyGear, activations: []int{5}, rule: fixed(1),
	},
	CardStadium: {
		name: "Stadium", shortDesc: "2 coins from all", cost: 6,
		desc:  "Get 2 coins from all players, on your turn only.",
		color: ColorPurple, family: FamilyMajor, activations: []int{6},
		rule: func() PayoutRule { return StealFromAll{Amount: 2} },
	},
	CardTVStation: {
		name: "TV Station", shortDesc: "5 coins from one", cost: 7,
		desc:  "Take 5 coins from any one player, on your turn only.",
		color: ColorPurple, family: FamilyMajor, activations: []int{6},
		rule: func() PayoutRule { return ChoosePlayerSteal{Amount: 5} },
	},
	CardBusinessCenter: {
		name: "Business Center", shortDesc: "trade a card", cost: 8,
		desc:  "Trade one non-major establishment with another player, on your turn only.",
		color: ColorPurple, family: FamilyMajor, activations: []int{6},
		rule: func() PayoutRule { return TradeCards{trade: &tradeState{}} },
	},
	CardCheeseFactory: {
		name: "Cheese Factory", shortDesc: "3 coins per Cow", cost: 5,
		desc:  "Get 3 coins from the bank for each Cow establishment you own, on your turn only.",
		color: ColorGreen, family: FamilyFactory, activations: []int{7},
		rule: func() PayoutRule { return FamilyFactoryPayout{Rate: 3, Target: FamilyCow} },
	},
	CardFurnitureFactory: {
		name: "Furniture Factory", shortDesc: "3 coins per Gear", cost: 3,
		desc:  "Get 3 coins from the bank for each Gear establishment you own, on your turn only.",
		color: ColorGreen, family: FamilyFactory, activations: []int{8},
		rule: func() PayoutRule { return FamilyFactoryPayout{Rate: 3, Target: FamilyGear} },
	},
	CardMine: {
		name: "Mine", shortDesc: "5 coins", cost: 6,
		desc:  "Get 5 coins from the bank, on anyone's turn.",
		color: ColorBlue, family: FamilyGear, activations: []int{9}, rule: fixed(5),
	},
	CardFamilyRestaurant: {
		name: "Family Restaurant", shortDesc: "2 coins", cost: 3,
		desc:  "Get 2 coins from the player who rolled the dice.",
		color: ColorRed, family: FamilyCup, activations: []int{9, 10}, rule: fee(2),
	},
	CardAppleOrchard: {
		name: "Apple Orchard", shortDesc: "3 coins", cost: 3,
		desc:  "Get 3 coins from the bank, on anyone's turn.",
		color: ColorBlue, family: FamilyWheat, activations: []int{10}, rule: fixed(3),
	},
	CardFruitMarket: {
		name: "Fruit and Vegetable Market", shortDesc: "2 coins per Wheat", cost: 2,
		desc:  "Get 2 coins from the bank for each Wheat establishment you own, on your turn only.",
		color: ColorGreen, family: FamilyFruit, activations: []int{11, 12},
		rule: func() PayoutRule { return FamilyFactoryPayout{Rate: 2, Target: FamilyWheat} },
	},
	CardSushiBar: {
		name: "Sushi Bar", shortDesc: "3 coins", cost: 4,
		desc:  "If you have a Harbor, get 3 coins from the player who rolled the dice.",
		color: ColorRed, family: FamilyCup, activations: []int{1},
		required: requires(LandmarkHarbor), rule: fee(3),
	},
	CardFlowerOrchard: {
		name: "Flower Orchard", shortDesc: "1 coin", cost: 2,
		desc:  "Get 1 coin from the bank, on anyone's turn.",
		color: ColorBlue, family: FamilyWheat, activations: []int{4}, rule: fixed(1),
	},
	CardFlowerShop: {
		name: "Flower Shop", shortDesc: "1 coin per Flower Orchard", cost: 1,
		desc:  "Get 1 coin from the bank for each Flower Orchard you own, on your turn only.",
		color: ColorGreen, family: FamilyBread, activations: []int{6},
		rule: func() PayoutRule { return KindFactory{Rate: 1, Target: CardFlowerOrchard} },
	},
	CardPizzaJoint: {
		name: "Pizza Joint", shortDesc: "1 coin", cost: 1,
		desc:  "Get 1 coin from the player who rolled the dice.",
		color: ColorRed, family: FamilyCup, activations: []int{7}, rule: fee(1),
	},
	CardPublisher: {
		name: "Publisher", shortDesc: "1 coin per Cup/Bread", cost: 5,
		desc:  "Get 1 coin from each player for each Cup and Bread establishment they own, on your turn only.",
		color: ColorPurple, family: FamilyMajor, activations: []int{7},
		rule: func() PayoutRule { return PublisherSteal{} },
	},
	CardTaxOffice: {
		name: "Tax Office", shortDesc: "half from 10+", cost: 4,
		desc:  "Take half (rounded down) of the coins of each player with 10 or more coins, on your turn only.",
		color: ColorPurple, family: FamilyMajor, activations: []int{8, 9},
		rule: func() PayoutRule { return TaxSteal{Threshold: 10} },
	},
	CardHamburgerStand: {
		name: "Hamburger Stand", shortDesc: "1 coin", cost: 1,
		desc:  "Get 1 coin from the player who rolled the dice.",
		color: ColorRed, family: FamilyCup, activations: []int{8}, rule: fee(1),
	},
	CardMackerelBoat: {
		name: "Mackerel Boat", shortDesc: "3 coins", cost: 2,
		desc:  "If you have a Harbor, get 3 coins from the bank on anyone's turn.",
		color: ColorBlue, family: FamilyBoat, activations: []int{8},
		required: requires(LandmarkHarbor), rule: fixed(3),
	},
	CardFoodWarehouse: {
		name: "Food Warehouse", shortDesc: "2 coins per Cup", cost: 2,
		desc:  "Get 2 coins from the bank for each Cup establishment you own, on your turn only.",
		color: ColorGreen, family: FamilyFactory, activations: []int{12, 13},
		rule: func() PayoutRule { return FamilyFactoryPayout{Rate: 2, Target: FamilyCup} },
	},
	CardTunaBoat: {
		name: "Tuna Boat", shortDesc: "2 dice roll", cost: 5,
		desc:  "If you have a Harbor, roll 2 dice and get that many coins from the bank on anyone's turn.",
		color: ColorBlue, family: FamilyBoat, activations: []int{12, 13, 14},
		required: requires(LandmarkHarbor), rule: func() PayoutRule { return SharedRoll{} },
	},
}

// NewCard stamps a fresh, unowned card of the given kind.
func NewCard(kind CardKind) (*Card, error) {
	t, ok := catalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCard, kind)
	}
	c := &Card{
		Kind:        kind,
		Name:        t.name,
		ShortDesc:   t.shortDesc,
		Desc:        t.desc,
		Cost:        t.cost,
		Color:       t.color,
		Family:      t.family,
		activations: append([]int(nil), t.activations...),
		rule:        t.rule(),
	}
	if t.required != nil {
		c.Required = requires(*t.required)
	}
	return c, nil
}

// MustCard is NewCard for catalog kinds known at compile time.
func MustCard(kind CardKind) *Card {
	c, err := NewCard(kind)
	if err != nil {
		panic(err)
	}
	return c
}

func (k CardKind) String() string {
	if t, ok := catalog[k]; ok {
		return t.name
	}
	return "Unknown"
}
