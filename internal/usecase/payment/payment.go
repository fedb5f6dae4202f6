package payment

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/usecase/funding"
	"github.com/unmined/spinrewards/internal/usecase/settings"
	"go.uber.org/zap"
)

// Recorder keeps receipts of finished payments
type Recorder interface {
	Record(ctx context.Context, receipt *domain.PaymentReceipt)
}

// Service sends XRP to the configured destination
type Service struct {
	ledgerSvc    domain.LedgerService
	receipts     domain.ReceiptAwaiter
	destinations *settings.DestinationService
	recorder     Recorder
	logger       *logger.Logger
}

// NewService creates a new payment service
func NewService(
	ledgerSvc domain.LedgerService,
	receipts domain.ReceiptAwaiter,
	destinations *settings.DestinationService,
	recorder Recorder,
	logger *logger.Logger,
) *Service {
	return &Service{
		ledgerSvc:    ledgerSvc,
		receipts:     receipts,
		destinations: destinations,
		recorder:     recorder,
		logger:       logger,
	}
}

// Send pays xrp from the wallet of secret and waits for validation.
// A validated but unsuccessful transaction is returned with Success false.
// Every validated payment is handed to the recorder.
func (s *Service) Send(ctx context.Context, secret string, xrp decimal.Decimal) (*domain.PaymentReceipt, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Enter your wallet secret.", http.StatusBadRequest, nil)
	}

	dest := s.destinations.Get(ctx)
	if dest.SpinMenu {
		return nil, domain.NewAppError(domain.ErrCodeValidation,
			"The destination opens the spin menu; set a ledger address to send.", http.StatusBadRequest, nil)
	}

	drops, err := funding.ToDrops(xrp)
	if err != nil {
		return nil, err
	}

	submitted, err := s.ledgerSvc.SignAndSubmit(ctx, secret, dest.Address, drops)
	if err != nil {
		s.logger.Error("Payment submission failed",
			zap.String("destination", dest.Address),
			zap.Int64("drops", drops),
			zap.Error(err))
		return nil, funding.LedgerAppError("submit payment", err)
	}

	status, err := s.receipts.Await(ctx, submitted.TxHash)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeLedgerTimeout,
			"Payment was submitted but not confirmed in time.", http.StatusGatewayTimeout, err)
	}

	s.logger.Info("Payment finished",
		zap.String("tx_hash", submitted.TxHash),
		zap.String("destination", dest.Address),
		zap.String("result", status.Result),
		zap.Int64("ledger_index", status.LedgerIndex))

	receipt := &domain.PaymentReceipt{
		TxHash:      submitted.TxHash,
		Account:     submitted.Account,
		Destination: dest.Address,
		XRP:         xrp,
		Drops:       drops,
		Result:      status.Result,
		LedgerIndex: status.LedgerIndex,
		Success:     status.Succeeded(),
	}
	s.recorder.Record(ctx, receipt)
	return receipt, nil
}
