package service

import (
	"math/rand"
	"time"
)

// Rand is the random source behind probabilistic triggering and action
// selection. *rand.Rand satisfies it; tests inject fixed sequences to force
// deterministic outcomes.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a time-seeded source for production use
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
