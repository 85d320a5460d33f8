package engine

import "sort"

// LandmarkKind identifies one landmark in the catalog.
type LandmarkKind int

const (
	LandmarkCityHall LandmarkKind = iota + 1
	LandmarkHarbor
	LandmarkTrainStation
	LandmarkShoppingMall
	LandmarkAmusementPark
	LandmarkRadioTower
	LandmarkAirport
)

// Ability is a rule modifier a constructed landmark grants its owner.
type Ability int

const (
	AbilityCoinIfBroke Ability = iota
	AbilityAddTwo
	AbilityTwoDice
	AbilityBreadCupBonus
	AbilityExtraTurn
	AbilityReroll
	AbilityTenCoins
	abilityCount
)

type landmarkTemplate struct {
	name           string
	shortDesc      string
	desc           string
	cost           int
	ability        Ability
	canDeconstruct bool
	startBuilt     bool
}

var landmarkCatalog = map[LandmarkKind]landmarkTemplate{
	LandmarkCityHall: {
		name: "City Hall", shortDesc: "coin if broke", cost: 0, ability: AbilityCoinIfBroke,
		desc:       "Immediately before buying establishments, if you have 0 coins, get 1 from the bank.",
		startBuilt: true,
	},
	LandmarkHarbor: {
		name: "Harbor", shortDesc: "+2 to 10+", cost: 2, ability: AbilityAddTwo, canDeconstruct: true,
		desc: "If the dice total is 10 or more, you may add 2 to the total, on your turn only.",
	},
	LandmarkTrainStation: {
		name: "Train Station", shortDesc: "two dice", cost: 4, ability: AbilityTwoDice, canDeconstruct: true,
		desc: "You may roll 1 or 2 dice.",
	},
	LandmarkShoppingMall: {
		name: "Shopping Mall", shortDesc: "+1 Cup/Bread", cost: 10, ability: AbilityBreadCupBonus, canDeconstruct: true,
		desc: "Each of your Cup and Bread establishments earns +1 coin.",
	},
	LandmarkAmusementPark: {
		name: "Amusement Park", shortDesc: "doubles again", cost: 16, ability: AbilityExtraTurn, canDeconstruct: true,
		desc: "If you roll doubles, take another turn after this one.",
	},
	LandmarkRadioTower: {
		name: "Radio Tower", shortDesc: "reroll", cost: 22, ability: AbilityReroll, canDeconstruct: true,
		desc: "Once every turn, you can choose to re-roll your dice.",
	},
	LandmarkAirport: {
		name: "Airport", shortDesc: "10 for nothing", cost: 30, ability: AbilityTenCoins, canDeconstruct: true,
		desc: "If you build nothing on your turn, you get 10 coins from the bank.",
	},
}

// Landmark is a victory structure owned by exactly one player.
type Landmark struct {
	Kind           LandmarkKind `json:"kind"`
	Name           string       `json:"name"`
	ShortDesc      string       `json:"short_desc"`
	Desc           string       `json:"desc"`
	Cost           int          `json:"cost"`
	CanDeconstruct bool         `json:"can_deconstruct"`
	Constructed    bool         `json:"constructed"`

	ability Ability
	owner   *Player
}

func newLandmark(kind LandmarkKind, owner *Player) (*Landmark, error) {
	t, ok := landmarkCatalog[kind]
	if !ok {
		return nil, ErrUnknownLandmark
	}
	l := &Landmark{
		Kind:           kind,
		Name:           t.name,
		ShortDesc:      t.shortDesc,
		Desc:           t.desc,
		Cost:           t.cost,
		CanDeconstruct: t.canDeconstruct,
		ability:        t.ability,
		owner:          owner,
	}
	if t.startBuilt {
		l.Construct()
	}
	return l, nil
}

// Construct builds the landmark and grants its ability to the owner.
func (l *Landmark) Construct() {
	l.Constructed = true
	l.owner.abilities[l.ability] = l
}

// Deconstruct removes the landmark and its ability. Permanent landmarks ignore it.
func (l *Landmark) Deconstruct() {
	if !l.CanDeconstruct {
		return
	}
	l.Constructed = false
	l.owner.abilities[l.ability] = nil
}

// Owner returns the player the landmark belongs to.
func (l *Landmark) Owner() *Player {
	return l.owner
}

func (l *Landmark) String() string {
	return l.Name
}

func (k LandmarkKind) String() string {
	if t, ok := landmarkCatalog[k]; ok {
		return t.name
	}
	return "Unknown"
}

// SortLandmarks orders landmarks by cost.
func SortLandmarks(ls []*Landmark) {
	sort.SliceStable(ls, func(i, j int) bool {
		return ls[i].Cost < ls[j].Cost
	})
}
