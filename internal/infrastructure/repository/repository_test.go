package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/storage"
)

func TestBalanceRepositoryFormat(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewBalanceRepository(store)

	_, err := repo.Get(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, repo.Set(ctx, "alice", 42))
	raw, err := store.Get(ctx, "balance:alice")
	require.NoError(t, err)
	assert.Equal(t, "42", raw)

	require.NoError(t, store.Set(ctx, "balance:alice", "lots"))
	_, err = repo.Get(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrCorruptValue)
}

func TestCredentialRepositoryFormat(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewCredentialRepository(store)

	credential, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, credential)

	require.NoError(t, repo.Create(ctx, &domain.Credential{Username: "alice", PasswordHash: "abc"}))
	raw, err := store.Get(ctx, "auth:alice")
	require.NoError(t, err)
	assert.JSONEq(t, `{"passwordHash":"abc"}`, raw)

	credential, err = repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", credential.Username)

	require.NoError(t, store.Set(ctx, "auth:alice", `{}`))
	_, err = repo.Get(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrCorruptValue)
}

func TestInventoryRepositoryFormat(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewInventoryRepository(store)

	require.NoError(t, repo.Set(ctx, "alice", nil))
	raw, err := store.Get(ctx, "savedSlots:alice")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	require.NoError(t, store.Set(ctx, "savedSlots:alice", "{not json"))
	_, err = repo.Get(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrCorruptValue)
}

func TestReceiptRepositoryFormat(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewReceiptRepository(store)

	_, err := repo.Get(ctx, "ABC")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	receipt := &domain.PaymentReceipt{
		TxHash:      "ABC",
		Account:     "rAlice",
		Destination: "rBank",
		XRP:         decimal.RequireFromString("1.25"),
		Drops:       1250000,
		Result:      domain.LedgerResultSuccess,
		LedgerIndex: 9,
		Success:     true,
	}
	require.NoError(t, repo.Save(ctx, receipt))

	raw, err := store.Get(ctx, "receipts:ABC")
	require.NoError(t, err)
	assert.Contains(t, raw, `"xrp":"1.25"`)

	got, err := repo.Get(ctx, "ABC")
	require.NoError(t, err)
	assert.True(t, receipt.XRP.Equal(got.XRP))
	assert.Equal(t, "rBank", got.Destination)
	assert.True(t, got.Success)

	require.NoError(t, store.Set(ctx, "receipts:ABC", "{"))
	_, err = repo.Get(ctx, "ABC")
	assert.ErrorIs(t, err, domain.ErrCorruptValue)
}

func TestSentValueRepositoryFormat(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewSentValueRepository(store)

	_, err := repo.Get(ctx, "rAlice")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, repo.Set(ctx, "rAlice", decimal.RequireFromString("3.000001")))
	raw, err := store.Get(ctx, "sent:rAlice")
	require.NoError(t, err)
	assert.Equal(t, "3.000001", raw)

	require.NoError(t, store.Set(ctx, "sent:rAlice", "much"))
	_, err = repo.Get(ctx, "rAlice")
	assert.ErrorIs(t, err, domain.ErrCorruptValue)
}
