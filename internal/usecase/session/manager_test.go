package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
)

func newTestManager(env *testEnv) *Manager {
	log := logger.NewNop()
	return NewManager(NewFactory(env.deps), lock.NewKeyedLockManager(log), time.Minute, log)
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	env := newTestEnv(stubRandom{})
	m := newTestManager(env)
	ctx := context.Background()

	first := m.Create()
	second := m.Create()
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, m.Len())

	require.NoError(t, m.With(ctx, first, func(c *Controller) error {
		_, err := c.SignIn(ctx, "alice", "pw")
		return err
	}))

	err := m.With(ctx, second, func(c *Controller) error {
		_, ok := c.ActiveUser()
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "activeUser:"+first, ActiveUserKey(first))
	pointer, err := env.store.Get(ctx, ActiveUserKey(first))
	require.NoError(t, err)
	assert.Equal(t, "alice", pointer)

	_, err = env.store.Get(ctx, domain.KeyActiveUser)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestManagerResumesEvictedSession(t *testing.T) {
	env := newTestEnv(stubRandom{})
	m := newTestManager(env)
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	id := m.Create()
	require.NoError(t, m.With(ctx, id, func(c *Controller) error {
		_, err := c.SignIn(ctx, "alice", "pw")
		return err
	}))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, m.Evict())
	assert.Equal(t, 0, m.Len())

	require.NoError(t, m.With(ctx, id, func(c *Controller) error {
		user, ok := c.ActiveUser()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		return nil
	}))
}

func TestManagerEvictSkipsActiveSessions(t *testing.T) {
	env := newTestEnv(stubRandom{})
	m := newTestManager(env)

	now := time.Now()
	m.now = func() time.Time { return now }

	busy := m.Create()
	m.Create()
	now = now.Add(2 * time.Minute)

	require.True(t, m.locks.TryLock(busy))
	assert.Equal(t, 1, m.Evict())
	m.locks.Unlock(busy)
	assert.Equal(t, 1, m.Len())
}

func TestManagerRejectsEmptySession(t *testing.T) {
	m := newTestManager(newTestEnv(stubRandom{}))

	err := m.With(context.Background(), "", func(c *Controller) error { return nil })
	assert.True(t, domain.HasCode(err, domain.ErrCodeSessionNotFound))
}

func TestJanitorStartStop(t *testing.T) {
	m := newTestManager(newTestEnv(stubRandom{}))
	m.StartJanitor()
	m.StartJanitor()
	m.StopJanitor()
	m.StopJanitor()
}
