package receipt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/external/ledger"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ErrTimeout is returned when a transaction is not validated in time
var ErrTimeout = errors.New("transaction not validated before timeout")

// Poller implements domain.ReceiptAwaiter by querying the ledger on a ticker
type Poller struct {
	ledgerSvc domain.LedgerService
	interval  time.Duration
	timeout   time.Duration
	logger    *logger.Logger
}

// NewPoller creates a new receipt poller
func NewPoller(ledgerSvc domain.LedgerService, interval, timeout time.Duration, logger *logger.Logger) *Poller {
	return &Poller{
		ledgerSvc: ledgerSvc,
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
	}
}

// Await polls txHash until the ledger reports it validated. Query errors
// are retried on the next tick; only the deadline ends the wait.
func (p *Poller) Await(ctx context.Context, txHash string) (*domain.TransactionStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var lastErr error
	for attempt := 1; ; attempt++ {
		status, err := p.ledgerSvc.QueryTransaction(ctx, txHash)
		switch {
		case err == nil && status.Validated:
			p.logger.Info("Transaction validated",
				zap.String("tx_hash", txHash),
				zap.String("result", status.Result),
				zap.Int64("ledger_index", status.LedgerIndex),
				zap.Int("attempts", attempt))
			return status, nil
		case err != nil && !ledger.IsNotFound(err):
			lastErr = err
			p.logger.Warn("Transaction query failed, retrying",
				zap.String("tx_hash", txHash),
				zap.Int("attempt", attempt),
				zap.Error(err))
		default:
			p.logger.Debug("Transaction not validated yet",
				zap.String("tx_hash", txHash),
				zap.Int("attempt", attempt))
		}

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return nil, fmt.Errorf("%w: %s: last error: %v", ErrTimeout, txHash, lastErr)
			}
			return nil, fmt.Errorf("%w: %s", ErrTimeout, txHash)
		case <-ticker.C:
		}
	}
}
