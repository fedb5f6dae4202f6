package funding

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Purchase is the receipt of a spin purchase
type Purchase struct {
	Spins       int64           `json:"spins"`
	XRP         decimal.Decimal `json:"xrp"`
	Drops       int64           `json:"drops"`
	Account     string          `json:"account"`
	TxHash      string          `json:"tx_hash"`
	LedgerIndex int64           `json:"ledger_index"`
	Balance     int64           `json:"balance"`
}

// Service buys spins with XRP sent to the bank address
type Service struct {
	ledgerSvc   domain.LedgerService
	receipts    domain.ReceiptAwaiter
	balances    domain.BalanceLedger
	bankAddress string
	xrpPerSpin  decimal.Decimal
	logger      *logger.Logger
}

// NewService creates a new funding service
func NewService(
	ledgerSvc domain.LedgerService,
	receipts domain.ReceiptAwaiter,
	balances domain.BalanceLedger,
	bankAddress string,
	xrpPerSpin decimal.Decimal,
	logger *logger.Logger,
) *Service {
	return &Service{
		ledgerSvc:   ledgerSvc,
		receipts:    receipts,
		balances:    balances,
		bankAddress: bankAddress,
		xrpPerSpin:  xrpPerSpin,
		logger:      logger,
	}
}

// Quote returns how many whole spins xrp buys
func (s *Service) Quote(xrp decimal.Decimal) int64 {
	if !xrp.IsPositive() || !s.xrpPerSpin.IsPositive() {
		return 0
	}
	return xrp.Div(s.xrpPerSpin).Floor().IntPart()
}

// BuySpins pays xrp from the wallet of secret to the bank and, once the
// payment is validated as successful, credits the spins to username.
// Any failure leaves the balance untouched.
func (s *Service) BuySpins(ctx context.Context, username, secret string, xrp decimal.Decimal) (*Purchase, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Enter your wallet secret.", http.StatusBadRequest, nil)
	}
	if s.balances.IsPrivileged(username) {
		return nil, domain.NewAppError(domain.ErrCodeValidation, "This account cannot buy spins.", http.StatusBadRequest, nil)
	}

	spins := s.Quote(xrp)
	if spins < 1 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidAmount,
			"Amount must buy at least one spin ("+s.xrpPerSpin.String()+" XRP).", http.StatusBadRequest, nil)
	}

	drops, err := ToDrops(xrp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Starting spin purchase",
		zap.String("username", username),
		zap.String("xrp", xrp.String()),
		zap.Int64("spins", spins))

	account, err := s.ledgerSvc.DeriveAddress(ctx, secret)
	if err != nil {
		return nil, LedgerAppError("derive address", err)
	}

	submitted, err := s.ledgerSvc.SignAndSubmit(ctx, secret, s.bankAddress, drops)
	if err != nil {
		s.logger.Error("Spin purchase payment failed",
			zap.String("username", username),
			zap.String("account", account),
			zap.Error(err))
		return nil, LedgerAppError("submit payment", err)
	}

	status, err := s.receipts.Await(ctx, submitted.TxHash)
	if err != nil {
		s.logger.Error("Spin purchase payment not confirmed",
			zap.String("username", username),
			zap.String("tx_hash", submitted.TxHash),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeLedgerTimeout,
			"Payment was not confirmed in time. No spins were credited.", http.StatusGatewayTimeout, err)
	}
	if !status.Succeeded() {
		s.logger.Warn("Spin purchase payment failed on ledger",
			zap.String("username", username),
			zap.String("tx_hash", submitted.TxHash),
			zap.String("result", status.Result))
		return nil, domain.NewAppError(domain.ErrCodeLedgerRejected,
			"Payment failed: "+status.Result, http.StatusUnprocessableEntity, nil)
	}

	balance := s.balances.Adjust(ctx, username, spins)

	s.logger.Info("Spin purchase completed",
		zap.String("username", username),
		zap.String("tx_hash", submitted.TxHash),
		zap.Int64("spins", spins),
		zap.Int64("balance", balance))

	return &Purchase{
		Spins:       spins,
		XRP:         xrp,
		Drops:       drops,
		Account:     account,
		TxHash:      submitted.TxHash,
		LedgerIndex: status.LedgerIndex,
		Balance:     balance,
	}, nil
}

// ToDrops converts a positive XRP amount with at most six decimals to drops
func ToDrops(xrp decimal.Decimal) (int64, error) {
	drops := xrp.Shift(6)
	if !xrp.IsPositive() || !drops.Equal(drops.Truncate(0)) {
		return 0, domain.NewAppError(domain.ErrCodeInvalidAmount,
			"Amount must be positive with at most 6 decimals.", http.StatusBadRequest, nil)
	}
	return drops.IntPart(), nil
}

// LedgerAppError maps a ledger client error to a user-facing error
func LedgerAppError(operation string, err error) *domain.AppError {
	var ledgerErr *domain.LedgerServiceError
	if errors.As(err, &ledgerErr) && ledgerErr.Is4xxError() {
		if operation == "derive address" {
			return domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid wallet secret.", http.StatusBadRequest, err)
		}
		return domain.NewAppError(domain.ErrCodeLedgerRejected, "Payment rejected: "+ledgerErr.Error(), http.StatusUnprocessableEntity, err)
	}
	return domain.NewExternalServiceError("ledger", operation, err)
}
