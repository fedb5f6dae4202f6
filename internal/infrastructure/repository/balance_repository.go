package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/unmined/spinrewards/internal/domain"
)

// BalanceRepository implements domain.BalanceRepository on a Store
type BalanceRepository struct {
	store domain.Store
}

// NewBalanceRepository creates a new balance repository
func NewBalanceRepository(store domain.Store) domain.BalanceRepository {
	return &BalanceRepository{store: store}
}

// Get reads the stored balance as written, without clamping
func (r *BalanceRepository) Get(ctx context.Context, username string) (int64, error) {
	raw, err := r.store.Get(ctx, domain.BalanceKey(username))
	if err != nil {
		return 0, err
	}

	balance, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: balance %q: %v", domain.ErrCorruptValue, raw, err)
	}
	return balance, nil
}

// Set stores the balance as a decimal string
func (r *BalanceRepository) Set(ctx context.Context, username string, balance int64) error {
	return r.store.Set(ctx, domain.BalanceKey(username), strconv.FormatInt(balance, 10))
}
