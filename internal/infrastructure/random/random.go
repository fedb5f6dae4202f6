package random

import (
	"math/rand/v2"

	"github.com/unmined/spinrewards/internal/domain"
)

type source struct{}

// New returns a domain.Random backed by the math/rand/v2 global generator,
// which is safe for concurrent use by every session.
func New() domain.Random {
	return source{}
}

func (source) Float64() float64 {
	return rand.Float64()
}

func (source) IntN(n int) int {
	return rand.IntN(n)
}
