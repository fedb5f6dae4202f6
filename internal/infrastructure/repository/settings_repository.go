package repository

import (
	"context"
	"errors"

	"github.com/unmined/spinrewards/internal/domain"
)

// SettingsRepository stores single string settings such as the active user pointer
type SettingsRepository struct {
	store domain.Store
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(store domain.Store) domain.SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the value of key, "" when unset
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.store.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return "", nil
	}
	return value, err
}

// Set stores value under key
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	return r.store.Set(ctx, key, value)
}

// Clear removes key
func (r *SettingsRepository) Clear(ctx context.Context, key string) error {
	return r.store.Delete(ctx, key)
}
