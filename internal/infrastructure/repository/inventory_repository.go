package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unmined/spinrewards/internal/domain"
)

// InventoryRepository implements domain.InventoryRepository on a Store
type InventoryRepository struct {
	store domain.Store
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(store domain.Store) domain.InventoryRepository {
	return &InventoryRepository{store: store}
}

// Get decodes the saved slots of username
func (r *InventoryRepository) Get(ctx context.Context, username string) ([]domain.SpinOutcome, error) {
	raw, err := r.store.Get(ctx, domain.SavedSlotsKey(username))
	if err != nil {
		return nil, err
	}

	var slots []domain.SpinOutcome
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, fmt.Errorf("%w: saved slots: %v", domain.ErrCorruptValue, err)
	}
	return slots, nil
}

// Set writes the whole list as one JSON array
func (r *InventoryRepository) Set(ctx context.Context, username string, slots []domain.SpinOutcome) error {
	if slots == nil {
		slots = []domain.SpinOutcome{}
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to marshal saved slots: %w", err)
	}
	return r.store.Set(ctx, domain.SavedSlotsKey(username), string(data))
}
