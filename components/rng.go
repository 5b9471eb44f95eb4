package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RNGData is the simulation's only randomness source.
type RNGData struct {
	Seed int64
	Rand *rand.Rand
}

// Range returns a uniform value in [lo, hi).
func (r *RNGData) Range(lo, hi float64) float64 {
	return lo + r.Rand.Float64()*(hi-lo)
}

var RNG = donburi.NewComponentType[RNGData]()
