package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/domain/mocks"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/infrastructure/repository"
	"github.com/unmined/spinrewards/internal/infrastructure/storage"
)

func newTestRegistry(store domain.Store) *Registry {
	return NewRegistry(repository.NewCredentialRepository(store), logger.NewNop())
}

func TestHashPassword(t *testing.T) {
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))
	assert.Len(t, HashPassword(""), 64)
}

func TestSignInCreatesThenVerifies(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	registry := newTestRegistry(store)

	name, err := registry.SignIn(ctx, "  alice ", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	raw, err := store.Get(ctx, domain.AuthKey("alice"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"passwordHash":"`+HashPassword("hunter2")+`"}`, raw)

	name, err = registry.SignIn(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	_, err = registry.SignIn(ctx, "alice", "wrong")
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidCredentials))
	assert.Contains(t, err.Error(), MsgWrongPassword)

	// failed attempt leaves the credential intact
	cred, err := registry.Credential(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, HashPassword("hunter2"), cred.PasswordHash)
}

func TestSignInValidation(t *testing.T) {
	registry := newTestRegistry(storage.NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		message  string
	}{
		{name: "empty_username", username: "", password: "x", message: MsgEnterUsername},
		{name: "blank_username", username: "   ", password: "x", message: MsgEnterUsername},
		{name: "empty_password", username: "bob", password: "", message: MsgEnterPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.SignIn(ctx, tt.username, tt.password)
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestCorruptCredentialIsReplaced(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	registry := newTestRegistry(store)

	require.NoError(t, store.Set(ctx, domain.AuthKey("alice"), "{oops"))

	name, err := registry.SignIn(ctx, "alice", "new-password")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	_, err = registry.SignIn(ctx, "alice", "new-password")
	assert.NoError(t, err)
}

func TestSignInStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	registry := newTestRegistry(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().Get(ctx, "auth:alice").Return("", errors.New("connection reset"))

	_, err := registry.SignIn(ctx, "alice", "pw")
	assert.True(t, domain.HasCode(err, domain.ErrCodeStorage))

	mockStore.EXPECT().Get(ctx, "auth:bob").Return("", domain.ErrKeyNotFound)
	mockStore.EXPECT().Set(ctx, "auth:bob", gomock.Any()).Return(errors.New("read only"))

	_, err = registry.SignIn(ctx, "bob", "pw")
	assert.True(t, domain.HasCode(err, domain.ErrCodeStorage))
}
