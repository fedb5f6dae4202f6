package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/infrastructure/repository"
	"github.com/unmined/spinrewards/internal/infrastructure/storage"
)

const fallback = "rnLDsmcYdsFiP9iad1dmaFJwy2VLRPsHNa"

func TestDestination(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewDestinationService(repository.NewSettingsRepository(store), fallback, logger.NewNop())

	dest := svc.Get(ctx)
	assert.Equal(t, fallback, dest.Address)
	assert.True(t, dest.IsDefault)

	dest, err := svc.Set(ctx, " SPIN ")
	require.NoError(t, err)
	assert.True(t, dest.SpinMenu)
	assert.Equal(t, "spin", svc.Get(ctx).Address)

	dest, err = svc.Set(ctx, "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe")
	require.NoError(t, err)
	assert.False(t, dest.SpinMenu)
	assert.False(t, dest.IsDefault)

	raw, err := store.Get(ctx, domain.KeyDestination)
	require.NoError(t, err)
	assert.Equal(t, "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe", raw)
}

func TestDestinationValidation(t *testing.T) {
	svc := NewDestinationService(repository.NewSettingsRepository(storage.NewMemoryStore()), fallback, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Set(ctx, "")
	assert.True(t, domain.HasCode(err, domain.ErrCodeRequiredField))

	for _, bad := range []string{"xPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe", "r0OIl", "spinning"} {
		_, err = svc.Set(ctx, bad)
		assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidFormat), bad)
	}
	assert.True(t, svc.Get(ctx).IsDefault)
}
