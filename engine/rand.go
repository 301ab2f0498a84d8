package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for food placement
// *rand.Rand from math/rand/v2 satisfies it; tests inject scripted sources
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source; seed 0 picks a time-based seed
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|0x9e3779b9))
}
