package spin

import (
	"fmt"

	"github.com/unmined/spinrewards/internal/domain"
)

// Engine composes two independent weighted draws into a spin outcome
type Engine struct {
	shapes []domain.Category
	colors []domain.Category
	rng    domain.Random
}

// NewEngine validates both pools and returns an engine
func NewEngine(shapes, colors []domain.Category, rng domain.Random) (*Engine, error) {
	if err := Validate(shapes); err != nil {
		return nil, fmt.Errorf("shapes: %w", err)
	}
	if err := Validate(colors); err != nil {
		return nil, fmt.Errorf("colors: %w", err)
	}

	return &Engine{
		shapes: append([]domain.Category(nil), shapes...),
		colors: append([]domain.Category(nil), colors...),
		rng:    rng,
	}, nil
}

// NewDefaultEngine returns an engine over the default shape and colour tables
func NewDefaultEngine(rng domain.Random) domain.SpinEngine {
	engine, err := NewEngine(DefaultShapes, DefaultColors, rng)
	if err != nil {
		panic(err)
	}
	return engine
}

// RunSpin draws a shape and a colour
func (e *Engine) RunSpin() domain.SpinOutcome {
	return domain.SpinOutcome{
		Shape: sample(e.shapes, e.rng),
		Color: sample(e.colors, e.rng),
	}
}

// RunBatch performs n spins
func RunBatch(engine domain.SpinEngine, n int) []domain.SpinOutcome {
	outcomes := make([]domain.SpinOutcome, n)
	for i := range outcomes {
		outcomes[i] = engine.RunSpin()
	}
	return outcomes
}
