package engine

import "math/rand/v2"

//go:generate go tool mockgen -destination=./mocks/dice_mock.go -package=mocks . Dice

// Dice produces uniform die faces in [1,6].
type Dice interface {
	Roll() int
}

// RandomDice rolls from a seeded PCG source so games can be replayed.
type RandomDice struct {
	rng *rand.Rand
}

// NewRandomDice creates dice from a seed. A zero seed draws one at random.
func NewRandomDice(seed uint64) *RandomDice {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomDice{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *RandomDice) Roll() int {
	return d.rng.IntN(6) + 1
}

// Shuffle permutes n elements using the same source as the dice.
func (d *RandomDice) Shuffle(n int, swap func(i, j int)) {
	d.rng.Shuffle(n, swap)
}
