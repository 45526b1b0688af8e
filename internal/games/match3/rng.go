package match3

import "math/rand/v2"

// Rand is the randomness source the spawner draws from.
// IntN must return a value in [0, n); *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
