package engine

import "go.uber.org/zap"

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	Expansion Expansion     // card pool and landmarks
	Market    MarketFactory // supply layout built from the generated deck
	Dice      Dice          // source for every die roll
	Logger    *zap.Logger   // optional; nil disables logging
}

// DefaultConfig plays the base game plus Harbor with every card available.
func DefaultConfig() GameConfig {
	return GameConfig{
		Expansion: ExpansionBase.Add(ExpansionHarbor),
		Market:    NewBaseMarket,
		Dice:      NewRandomDice(0),
	}
}
