package wallet

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/usecase/funding"
	"go.uber.org/zap"
)

// HistoryLimit is how many recent transactions History asks the node for
const HistoryLimit = 20

// Balance is the ledger balance of a wallet plus the XRP it has sent
// through the payment flow
type Balance struct {
	Address     string          `json:"address"`
	Funded      bool            `json:"funded"`
	XRP         decimal.Decimal `json:"xrp" swaggertype:"string"`
	Drops       int64           `json:"drops"`
	LedgerIndex int64           `json:"ledger_index"`
	Sent        decimal.Decimal `json:"sent_xrp" swaggertype:"string"`
}

// HistoryEntry is one transaction seen from the wallet's side
type HistoryEntry struct {
	domain.AccountTx
	Outgoing bool            `json:"outgoing"`
	XRP      decimal.Decimal `json:"xrp" swaggertype:"string"`
	Time     *time.Time      `json:"time,omitempty"`
}

// History is the recent transaction list of a wallet
type History struct {
	Address      string         `json:"address"`
	Transactions []HistoryEntry `json:"transactions"`
}

// Service reads wallet state from the ledger and keeps payment receipts
type Service struct {
	ledgerSvc domain.LedgerService
	receipts  domain.ReceiptRepository
	sent      domain.SentValueRepository
	locks     *lock.KeyedLockManager
	logger    *logger.Logger
}

// NewService creates a new wallet service. Sent totals of one address
// are updated under locks.
func NewService(
	ledgerSvc domain.LedgerService,
	receipts domain.ReceiptRepository,
	sent domain.SentValueRepository,
	locks *lock.KeyedLockManager,
	logger *logger.Logger,
) *Service {
	return &Service{
		ledgerSvc: ledgerSvc,
		receipts:  receipts,
		sent:      sent,
		locks:     locks,
		logger:    logger,
	}
}

// Balance returns the validated XRP balance of the wallet of secret.
// An unfunded account reads as zero with Funded false.
func (s *Service) Balance(ctx context.Context, secret string) (*Balance, error) {
	address, err := s.address(ctx, secret)
	if err != nil {
		return nil, err
	}

	result := &Balance{Address: address, Sent: s.SentTotal(ctx, address)}

	info, err := s.ledgerSvc.AccountInfo(ctx, address)
	switch {
	case domain.IsAccountNotFound(err):
		return result, nil
	case err != nil:
		return nil, domain.NewExternalServiceError("ledger", "read balance", err)
	}

	result.Funded = true
	result.Drops = info.Drops
	result.XRP = dropsToXRP(info.Drops)
	result.LedgerIndex = info.LedgerIndex
	return result, nil
}

// History returns the most recent transactions of the wallet of secret
func (s *Service) History(ctx context.Context, secret string) (*History, error) {
	address, err := s.address(ctx, secret)
	if err != nil {
		return nil, err
	}

	txs, err := s.ledgerSvc.AccountTransactions(ctx, address, HistoryLimit)
	if err != nil && !domain.IsAccountNotFound(err) {
		return nil, domain.NewExternalServiceError("ledger", "read history", err)
	}

	entries := make([]HistoryEntry, 0, len(txs))
	for _, tx := range txs {
		entry := HistoryEntry{
			AccountTx: tx,
			Outgoing:  tx.Account == address,
			XRP:       dropsToXRP(tx.Drops),
		}
		if tx.Date > 0 {
			at := time.Unix(tx.Date+domain.RippleEpoch, 0).UTC()
			entry.Time = &at
		}
		entries = append(entries, entry)
	}
	return &History{Address: address, Transactions: entries}, nil
}

// Receipt returns the stored receipt of a payment
func (s *Service) Receipt(ctx context.Context, txHash string) (*domain.PaymentReceipt, error) {
	txHash = strings.TrimSpace(txHash)
	if txHash == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Enter a transaction hash.", http.StatusBadRequest, nil)
	}

	receipt, err := s.receipts.Get(ctx, txHash)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, domain.NewAppError(domain.ErrCodeReceiptNotFound, "No receipt for this transaction.", http.StatusNotFound, nil)
	}
	if err != nil {
		return nil, domain.NewStorageError("read receipt", err)
	}
	return receipt, nil
}

// Record stores receipt and, for a successful payment, adds its amount to
// the sender's sent total. Storage failures are logged, never returned:
// the payment has already happened.
func (s *Service) Record(ctx context.Context, receipt *domain.PaymentReceipt) {
	if receipt == nil || receipt.TxHash == "" {
		return
	}
	if err := s.receipts.Save(ctx, receipt); err != nil {
		s.logger.Warn("Failed to store receipt",
			zap.String("tx_hash", receipt.TxHash),
			zap.Error(err))
	}
	if !receipt.Success || receipt.Account == "" {
		return
	}

	if err := s.locks.Lock(ctx, receipt.Account); err != nil {
		s.logger.Warn("Sent total not updated, lock unavailable",
			zap.String("account", receipt.Account),
			zap.Error(err))
		return
	}
	defer s.locks.Unlock(receipt.Account)

	total := s.SentTotal(ctx, receipt.Account).Add(receipt.XRP)
	if err := s.sent.Set(ctx, receipt.Account, total); err != nil {
		s.logger.Warn("Failed to store sent total",
			zap.String("account", receipt.Account),
			zap.Error(err))
		return
	}

	s.logger.Debug("Sent total updated",
		zap.String("account", receipt.Account),
		zap.String("total_xrp", total.String()))
}

// SentTotal returns the XRP sent from address so far. Missing and
// unreadable totals read as zero.
func (s *Service) SentTotal(ctx context.Context, address string) decimal.Decimal {
	total, err := s.sent.Get(ctx, address)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Warn("Failed to read sent total, using 0",
				zap.String("account", address),
				zap.Error(err))
		}
		return decimal.Zero
	}
	return total
}

func (s *Service) address(ctx context.Context, secret string) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", domain.NewAppError(domain.ErrCodeRequiredField, "Enter your wallet secret.", http.StatusBadRequest, nil)
	}
	address, err := s.ledgerSvc.DeriveAddress(ctx, secret)
	if err != nil {
		return "", funding.LedgerAppError("derive address", err)
	}
	return address, nil
}

func dropsToXRP(drops int64) decimal.Decimal {
	return decimal.New(drops, -6)
}
