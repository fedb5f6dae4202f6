package app

import (
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/external/ledger"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/infrastructure/receipt"
)

func (a *application) InitLedgerService(log *logger.Logger) domain.LedgerService {
	return ledger.NewLedgerService(ledger.Config{
		URL:      a.config.Ledger.URL,
		Timeout:  a.config.Ledger.Timeout,
		RetryMax: a.config.Ledger.RetryMax,
	}, log)
}

func (a *application) InitReceiptPoller(ledgerSvc domain.LedgerService, log *logger.Logger) domain.ReceiptAwaiter {
	return receipt.NewPoller(ledgerSvc, a.config.Ledger.PollInterval, a.config.Ledger.PollTimeout, log)
}
