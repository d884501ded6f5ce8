package setup

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the uniform random source behind every draw in a setup: faction
// picks, clearing permutations and the seat shuffle.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a seeded Random. Equal seeds replay equal setups.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}

func newTimeSeededRandom() Random {
	return NewRandom(uint64(time.Now().UnixNano()))
}
