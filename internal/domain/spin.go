package domain

// Category is one weighted entry of a sampling pool (a shape or a colour)
type Category struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Hex    string  `json:"hex,omitempty"`
}

// SpinOutcome is the result of one spin. Shape and colour are drawn independently.
type SpinOutcome struct {
	Shape Category `json:"shape"`
	Color Category `json:"color"`
}

// Random is the source of randomness used by the engine and the games.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// SpinEngine produces spin outcomes
type SpinEngine interface {
	RunSpin() SpinOutcome
}
