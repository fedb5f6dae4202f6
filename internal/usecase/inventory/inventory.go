package inventory

import (
	"context"
	"errors"

	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DefaultCapacity is the number of saved slots a user may hold
const DefaultCapacity = 8

// Inventory implements domain.Inventory
type Inventory struct {
	repo     domain.InventoryRepository
	capacity int
	logger   *logger.Logger
}

// NewInventory creates an inventory bounded to capacity slots
func NewInventory(repo domain.InventoryRepository, capacity int, logger *logger.Logger) *Inventory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Inventory{
		repo:     repo,
		capacity: capacity,
		logger:   logger,
	}
}

// Capacity returns the maximum number of saved slots
func (i *Inventory) Capacity() int {
	return i.capacity
}

// List returns the saved slots, oldest first. Lists longer than the
// capacity are truncated; unreadable data reads as empty.
func (i *Inventory) List(ctx context.Context, username string) []domain.SpinOutcome {
	slots, err := i.repo.Get(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			i.logger.Warn("Failed to read saved slots, using empty list",
				zap.String("username", username),
				zap.Error(err))
		}
		return []domain.SpinOutcome{}
	}

	if len(slots) > i.capacity {
		slots = slots[:i.capacity]
	}
	return append([]domain.SpinOutcome{}, slots...)
}

// Save appends outcome. It is a no-op returning false when the inventory is full.
func (i *Inventory) Save(ctx context.Context, username string, outcome domain.SpinOutcome) bool {
	slots := i.List(ctx, username)
	if len(slots) >= i.capacity {
		i.logger.Debug("Inventory full, slot not saved",
			zap.String("username", username),
			zap.Int("capacity", i.capacity))
		return false
	}

	slots = append(slots, outcome)
	i.persist(ctx, username, slots)
	return true
}

// Remove deletes the slot at index and compacts the list.
// It returns false when index is out of range.
func (i *Inventory) Remove(ctx context.Context, username string, index int) bool {
	slots := i.List(ctx, username)
	if index < 0 || index >= len(slots) {
		return false
	}

	slots = append(slots[:index], slots[index+1:]...)
	i.persist(ctx, username, slots)
	return true
}

func (i *Inventory) persist(ctx context.Context, username string, slots []domain.SpinOutcome) {
	if err := i.repo.Set(ctx, username, slots); err != nil {
		i.logger.Warn("Failed to persist saved slots",
			zap.String("username", username),
			zap.Int("count", len(slots)),
			zap.Error(err))
	}
}
