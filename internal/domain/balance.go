package domain

import "context"

// BalanceRepository persists raw per-user balances
type BalanceRepository interface {
	Get(ctx context.Context, username string) (int64, error)
	Set(ctx context.Context, username string, balance int64) error
}

// BalanceLedger defines the per-user credit ledger.
// Load and Adjust never return an error: storage failures degrade to
// defaults. Debit is the only checked operation and backs every wager.
type BalanceLedger interface {
	Load(ctx context.Context, username string) int64
	Adjust(ctx context.Context, username string, delta int64) int64
	Debit(ctx context.Context, username string, amount int64) (int64, error)
	IsPrivileged(username string) bool
}
