package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DefaultTimeout bounds how long Lock waits when ctx has no deadline
const DefaultTimeout = 5 * time.Second

// KeyedLockManager serializes work per key, such as a username or a session id
type KeyedLockManager struct {
	locks   sync.Map // map[string]*sync.Mutex
	timeout time.Duration
	logger  *logger.Logger
}

// NewKeyedLockManager creates a lock manager
func NewKeyedLockManager(logger *logger.Logger) *KeyedLockManager {
	return &KeyedLockManager{
		timeout: DefaultTimeout,
		logger:  logger,
	}
}

// Lock acquires the lock for key, giving up when ctx ends or the timeout passes
func (m *KeyedLockManager) Lock(ctx context.Context, key string) error {
	mu := m.getOrCreateMutex(key)
	if mu.TryLock() {
		return nil
	}

	m.logger.Debug("Waiting for lock", zap.String("key", key))

	var (
		state    sync.Mutex
		gaveUp   bool
		acquired = make(chan struct{})
	)
	go func() {
		mu.Lock()
		state.Lock()
		defer state.Unlock()
		if gaveUp {
			mu.Unlock()
			return
		}
		close(acquired)
	}()

	// giveUp abandons the pending acquisition, releasing the mutex if it
	// was obtained in the meantime
	giveUp := func() {
		state.Lock()
		defer state.Unlock()
		gaveUp = true
		select {
		case <-acquired:
			mu.Unlock()
		default:
		}
	}

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case <-acquired:
		return nil
	case <-ctx.Done():
		giveUp()
		m.logger.Warn("Failed to acquire lock: context cancelled", zap.String("key", key), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for %s: %w", key, ctx.Err())
	case <-timer.C:
		giveUp()
		m.logger.Warn("Failed to acquire lock: timeout", zap.String("key", key), zap.Duration("timeout", m.timeout))
		return fmt.Errorf("failed to acquire lock for %s: timeout", key)
	}
}

// Unlock releases the lock for key
func (m *KeyedLockManager) Unlock(key string) {
	mu, ok := m.locks.Load(key)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.String("key", key))
		return
	}
	mu.(*sync.Mutex).Unlock()
}

// TryLock attempts to acquire a lock without blocking
func (m *KeyedLockManager) TryLock(key string) bool {
	return m.getOrCreateMutex(key).TryLock()
}

func (m *KeyedLockManager) getOrCreateMutex(key string) *sync.Mutex {
	if mu, ok := m.locks.Load(key); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
