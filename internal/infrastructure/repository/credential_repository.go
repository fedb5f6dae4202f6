package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/unmined/spinrewards/internal/domain"
)

// CredentialRepository implements domain.CredentialRepository on a Store
type CredentialRepository struct {
	store domain.Store
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(store domain.Store) domain.CredentialRepository {
	return &CredentialRepository{store: store}
}

// Get retrieves the credential of username, nil when none is stored
func (r *CredentialRepository) Get(ctx context.Context, username string) (*domain.Credential, error) {
	raw, err := r.store.Get(ctx, domain.AuthKey(username))
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var credential domain.Credential
	if err := json.Unmarshal([]byte(raw), &credential); err != nil {
		return nil, fmt.Errorf("%w: credential: %v", domain.ErrCorruptValue, err)
	}
	if credential.PasswordHash == "" {
		return nil, fmt.Errorf("%w: credential without passwordHash", domain.ErrCorruptValue)
	}
	credential.Username = username
	return &credential, nil
}

// Create stores a credential as {"passwordHash": "..."}
func (r *CredentialRepository) Create(ctx context.Context, credential *domain.Credential) error {
	data, err := json.Marshal(credential)
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}
	return r.store.Set(ctx, domain.AuthKey(credential.Username), string(data))
}
