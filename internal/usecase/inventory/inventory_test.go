package inventory

import (
	"context"
	"encoding/json"
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

func outcome(shape, color string) domain.SpinOutcome {
	return domain.SpinOutcome{
		Shape: domain.Category{ID: shape, Name: shape, Weight: 30},
		Color: domain.Category{ID: color, Name: color, Weight: 20, Hex: "#3b82f6"},
	}
}

func newTestInventory(store domain.Store) *Inventory {
	return NewInventory(repository.NewInventoryRepository(store), DefaultCapacity, logger.NewNop())
}

func TestSaveUpToCapacity(t *testing.T) {
	ctx := context.Background()
	inv := newTestInventory(storage.NewMemoryStore())

	assert.Empty(t, inv.List(ctx, "alice"))
	for i := 0; i < DefaultCapacity; i++ {
		assert.True(t, inv.Save(ctx, "alice", outcome("circle", "blue")))
	}
	assert.Len(t, inv.List(ctx, "alice"), DefaultCapacity)

	assert.False(t, inv.Save(ctx, "alice", outcome("star", "red")))
	slots := inv.List(ctx, "alice")
	assert.Len(t, slots, DefaultCapacity)
	for _, s := range slots {
		assert.Equal(t, "circle", s.Shape.ID)
	}

	// other users are independent
	assert.Empty(t, inv.List(ctx, "bob"))
}

func TestRemoveCompacts(t *testing.T) {
	ctx := context.Background()
	inv := newTestInventory(storage.NewMemoryStore())

	inv.Save(ctx, "alice", outcome("circle", "gray"))
	inv.Save(ctx, "alice", outcome("square", "green"))
	inv.Save(ctx, "alice", outcome("star", "pink"))

	assert.False(t, inv.Remove(ctx, "alice", 3))
	assert.False(t, inv.Remove(ctx, "alice", -1))

	assert.True(t, inv.Remove(ctx, "alice", 1))
	slots := inv.List(ctx, "alice")
	require.Len(t, slots, 2)
	assert.Equal(t, "circle", slots[0].Shape.ID)
	assert.Equal(t, "star", slots[1].Shape.ID)
}

func TestSaveRemoveSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	inv := newTestInventory(storage.NewMemoryStore())
	o := outcome("triangle", "amber")

	require.True(t, inv.Save(ctx, "alice", o))
	require.True(t, inv.Remove(ctx, "alice", 0))
	assert.Empty(t, inv.List(ctx, "alice"))
	require.True(t, inv.Save(ctx, "alice", o))

	single := newTestInventory(storage.NewMemoryStore())
	require.True(t, single.Save(ctx, "alice", o))

	assert.Equal(t, single.List(ctx, "alice"), inv.List(ctx, "alice"))
}

func TestListTruncatesAndToleratesCorruption(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	inv := newTestInventory(store)

	oversized := make([]domain.SpinOutcome, 11)
	for i := range oversized {
		oversized[i] = outcome("triangle", "purple")
	}
	data, err := json.Marshal(oversized)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, domain.SavedSlotsKey("alice"), string(data)))

	assert.Len(t, inv.List(ctx, "alice"), DefaultCapacity)
	assert.False(t, inv.Save(ctx, "alice", outcome("star", "red")))

	require.NoError(t, store.Set(ctx, domain.SavedSlotsKey("bob"), "{broken"))
	assert.Empty(t, inv.List(ctx, "bob"))
	assert.True(t, inv.Save(ctx, "bob", outcome("star", "red")))
	assert.Len(t, inv.List(ctx, "bob"), 1)
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	inv := newTestInventory(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().Get(ctx, "savedSlots:alice").Return("", domain.ErrKeyNotFound)
	mockStore.EXPECT().Set(ctx, "savedSlots:alice", gomock.Any()).Return(errors.New("quota exceeded"))

	assert.True(t, inv.Save(ctx, "alice", outcome("circle", "gray")))
}
