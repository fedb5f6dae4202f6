package balance

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// BackdoorPolicy names the one account whose balance is a fixed constant
type BackdoorPolicy struct {
	Username string
	Amount   int64
}

// IsPrivileged reports whether username is the backdoor account
func (p BackdoorPolicy) IsPrivileged(username string) bool {
	return p.Username != "" && username == p.Username
}

// Ledger implements domain.BalanceLedger
type Ledger struct {
	repo   domain.BalanceRepository
	policy BackdoorPolicy
	locks  *lock.KeyedLockManager
	logger *logger.Logger
}

// NewLedger creates a new balance ledger. Adjustments of one user are
// serialized through locks so concurrent sessions do not lose updates.
func NewLedger(repo domain.BalanceRepository, policy BackdoorPolicy, locks *lock.KeyedLockManager, logger *logger.Logger) *Ledger {
	return &Ledger{
		repo:   repo,
		policy: policy,
		locks:  locks,
		logger: logger,
	}
}

// IsPrivileged reports whether username bypasses the stored balance
func (l *Ledger) IsPrivileged(username string) bool {
	return l.policy.IsPrivileged(username)
}

// Load returns the effective balance. Missing, corrupt, unreadable or
// negative stored values all read as 0.
func (l *Ledger) Load(ctx context.Context, username string) int64 {
	if l.policy.IsPrivileged(username) {
		return l.policy.Amount
	}

	balance, err := l.repo.Get(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			l.logger.Warn("Failed to read balance, using 0",
				zap.String("username", username),
				zap.Error(err))
		}
		return 0
	}

	if balance < 0 {
		l.logger.Warn("Negative stored balance, using 0",
			zap.String("username", username),
			zap.Int64("stored", balance))
		return 0
	}
	return balance
}

// Adjust applies delta, clamps the result at 0, persists it and returns it.
// The backdoor account is never written.
func (l *Ledger) Adjust(ctx context.Context, username string, delta int64) int64 {
	if l.policy.IsPrivileged(username) {
		return l.policy.Amount
	}

	if err := l.locks.Lock(ctx, username); err != nil {
		l.logger.Error("Balance not adjusted, lock unavailable",
			zap.String("username", username),
			zap.Int64("delta", delta),
			zap.Error(err))
		return l.Load(ctx, username)
	}
	defer l.locks.Unlock(username)

	current := l.Load(ctx, username)
	next := current + delta
	switch {
	case delta > 0 && next < current:
		next = math.MaxInt64
	case next < 0:
		next = 0
	}

	if err := l.repo.Set(ctx, username, next); err != nil {
		l.logger.Warn("Failed to persist balance",
			zap.String("username", username),
			zap.Int64("balance", next),
			zap.Error(err))
	}

	l.logger.Debug("Balance adjusted",
		zap.String("username", username),
		zap.Int64("delta", delta),
		zap.Int64("old_balance", current),
		zap.Int64("new_balance", next))

	return next
}

// Debit removes amount only if the stored balance covers it. The check and
// the write happen under the same per-user lock, so concurrent sessions of
// one user can never spend the same credits twice.
func (l *Ledger) Debit(ctx context.Context, username string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.NewAppError(domain.ErrCodeInvalidAmount, "Amount must be a positive whole number.", http.StatusBadRequest, nil)
	}
	if l.policy.IsPrivileged(username) {
		return l.policy.Amount, nil
	}

	if err := l.locks.Lock(ctx, username); err != nil {
		l.logger.Error("Balance not debited, lock unavailable",
			zap.String("username", username),
			zap.Int64("amount", amount),
			zap.Error(err))
		return 0, domain.NewAppError(domain.ErrCodeBalanceBusy, "Balance is busy, try again.", http.StatusConflict, err)
	}
	defer l.locks.Unlock(username)

	current := l.Load(ctx, username)
	if current < amount {
		return current, domain.NewInsufficientBalanceError(current, amount)
	}

	next := current - amount
	if err := l.repo.Set(ctx, username, next); err != nil {
		l.logger.Error("Balance not debited, write failed",
			zap.String("username", username),
			zap.Int64("amount", amount),
			zap.Error(err))
		return current, domain.NewStorageError("debit balance", err)
	}

	l.logger.Debug("Balance debited",
		zap.String("username", username),
		zap.Int64("amount", amount),
		zap.Int64("old_balance", current),
		zap.Int64("new_balance", next))

	return next, nil
}
