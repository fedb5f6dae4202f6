package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Factory builds the controller of a session
type Factory func(sessionID string) *Controller

// ActiveUserKey is the storage key of the active-user pointer of a
// session, "activeUser:{sid}"
func ActiveUserKey(sessionID string) string {
	return domain.KeyActiveUser + ":" + sessionID
}

// NewFactory returns a Factory giving each session its own active-user pointer
func NewFactory(deps Dependencies) Factory {
	return func(sessionID string) *Controller {
		return NewController(deps, WithActiveUserKey(ActiveUserKey(sessionID)))
	}
}

type entry struct {
	controller *Controller
	lastSeen   time.Time
}

// Manager keeps one controller per session and serializes calls on it.
// Idle controllers are evicted from memory by a background janitor; the
// next request of that session resumes it from its active-user pointer.
type Manager struct {
	factory  Factory
	locks    *lock.KeyedLockManager
	idleTTL  time.Duration
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	runMu     sync.Mutex
	isRunning bool
}

// NewManager creates a session manager
func NewManager(factory Factory, locks *lock.KeyedLockManager, idleTTL time.Duration, logger *logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	interval := idleTTL / 4
	if interval < time.Second {
		interval = time.Second
	}
	return &Manager{
		factory:  factory,
		locks:    locks,
		idleTTL:  idleTTL,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*entry),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Create starts a new signed-out session and returns its id
func (m *Manager) Create() string {
	sessionID := uuid.NewString()

	m.mu.Lock()
	m.sessions[sessionID] = &entry{controller: m.factory(sessionID), lastSeen: m.now()}
	m.mu.Unlock()

	m.logger.Debug("Session created", zap.String("session_id", sessionID))
	return sessionID
}

// With runs fn on the controller of sessionID while holding its lock.
// A session unknown to memory is rebuilt and resumed from storage.
func (m *Manager) With(ctx context.Context, sessionID string, fn func(c *Controller) error) error {
	if sessionID == "" {
		return domain.NewAppError(domain.ErrCodeSessionNotFound, "Session not found", http.StatusUnauthorized, nil)
	}

	if err := m.locks.Lock(ctx, sessionID); err != nil {
		return domain.NewAppError(domain.ErrCodeGameInvalidState, "Session is busy, try again.", http.StatusConflict, err)
	}
	defer m.locks.Unlock(sessionID)

	m.mu.Lock()
	e, ok := m.sessions[sessionID]
	if !ok {
		e = &entry{controller: m.factory(sessionID)}
		m.sessions[sessionID] = e
	}
	e.lastSeen = m.now()
	m.mu.Unlock()

	if !ok && e.controller.Resume(ctx) {
		user, _ := e.controller.ActiveUser()
		m.logger.Info("Session resumed",
			zap.String("session_id", sessionID),
			zap.String("username", user))
	}

	return fn(e.controller)
}

// Remove drops a session from memory
func (m *Manager) Remove(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}

// Len returns the number of sessions held in memory
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict drops sessions idle for longer than the TTL. Sessions in use are skipped.
func (m *Manager) Evict() int {
	cutoff := m.now().Add(-m.idleTTL)

	m.mu.Lock()
	var idle []string
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			idle = append(idle, id)
		}
	}
	m.mu.Unlock()

	evicted := 0
	for _, id := range idle {
		if !m.locks.TryLock(id) {
			continue
		}
		m.mu.Lock()
		if e, ok := m.sessions[id]; ok && e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
		m.mu.Unlock()
		m.locks.Unlock(id)
	}

	if evicted > 0 {
		m.logger.Info("Evicted idle sessions", zap.Int("count", evicted))
	}
	return evicted
}

// StartJanitor starts the background eviction loop
func (m *Manager) StartJanitor() {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if m.isRunning {
		m.logger.Warn("Session janitor is already running")
		return
	}

	m.isRunning = true
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.logger.Info("Session janitor started", zap.Duration("idle_ttl", m.idleTTL))

		for {
			select {
			case <-m.ctx.Done():
				return
			case <-ticker.C:
				m.Evict()
			}
		}
	}()
}

// StopJanitor stops the background eviction loop
func (m *Manager) StopJanitor() {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if !m.isRunning {
		return
	}

	m.cancel()
	m.wg.Wait()
	m.isRunning = false
	m.logger.Info("Session janitor stopped")
}
