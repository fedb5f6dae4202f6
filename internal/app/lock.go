package app

import (
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
)

// InitLockManager provides the per-session lock manager
func (a *application) InitLockManager(log *logger.Logger) *lock.KeyedLockManager {
	return lock.NewKeyedLockManager(log)
}
