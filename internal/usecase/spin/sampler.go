package spin

import (
	"errors"
	"fmt"
	"math"

	"github.com/unmined/spinrewards/internal/domain"
)

var (
	// ErrEmptyPool is returned when sampling from no categories
	ErrEmptyPool = errors.New("spin: empty category pool")
	// ErrNoWeight is returned when every category has weight 0
	ErrNoWeight = errors.New("spin: pool has no positive weight")
)

// Validate checks that a pool can be sampled
func Validate(categories []domain.Category) error {
	if len(categories) == 0 {
		return ErrEmptyPool
	}

	total := 0.0
	for _, c := range categories {
		if c.Weight < 0 || math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			return fmt.Errorf("spin: category %q has invalid weight %v", c.ID, c.Weight)
		}
		total += c.Weight
	}
	if total <= 0 || math.IsInf(total, 0) {
		return ErrNoWeight
	}
	return nil
}

// Sample draws one category with probability weight/total.
// Weights are relative and need not sum to any constant. Zero-weight
// categories are skipped, so they can never be returned.
func Sample(categories []domain.Category, rng domain.Random) (domain.Category, error) {
	if err := Validate(categories); err != nil {
		return domain.Category{}, err
	}
	return sample(categories, rng), nil
}

func sample(categories []domain.Category, rng domain.Random) domain.Category {
	total := 0.0
	for _, c := range categories {
		total += c.Weight
	}

	r := rng.Float64() * total
	last := -1
	for i, c := range categories {
		if c.Weight == 0 {
			continue
		}
		last = i
		r -= c.Weight
		if r <= 0 {
			return c
		}
	}

	// float drift left a remainder: fall back to the last reachable category
	return categories[last]
}
