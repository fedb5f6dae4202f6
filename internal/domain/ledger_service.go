package domain

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -destination=mocks/mock_ledger_service.go -package=mocks github.com/unmined/spinrewards/internal/domain LedgerService

// LedgerService is the narrow capability used to reach the ledger.
// Signing keys never leave the call; the core only sees addresses, hashes and results.
type LedgerService interface {
	DeriveAddress(ctx context.Context, secret string) (string, error)
	SignAndSubmit(ctx context.Context, secret, destination string, drops int64) (*SubmitResult, error)
	QueryTransaction(ctx context.Context, txHash string) (*TransactionStatus, error)
	AccountInfo(ctx context.Context, address string) (*AccountInfo, error)
	AccountTransactions(ctx context.Context, address string, limit int) ([]AccountTx, error)
}

// SubmitResult is returned after a payment was signed and handed to the ledger
type SubmitResult struct {
	TxHash       string `json:"tx_hash"`
	Account      string `json:"account"`
	EngineResult string `json:"engine_result"`
}

// TransactionStatus is the ledger view of a submitted transaction
type TransactionStatus struct {
	TxHash      string `json:"tx_hash"`
	Result      string `json:"result"`
	LedgerIndex int64  `json:"ledger_index"`
	Validated   bool   `json:"validated"`
}

// Succeeded reports whether the transaction is final and applied
func (s *TransactionStatus) Succeeded() bool {
	return s != nil && s.Validated && s.Result == LedgerResultSuccess
}

// LedgerResultSuccess is the result code of an applied transaction
const LedgerResultSuccess = "tesSUCCESS"

// LedgerCodeAccountNotFound is the node error for an unfunded account
const LedgerCodeAccountNotFound = "actNotFound"

// DropsPerXRP is the number of drops in one XRP
const DropsPerXRP = 1_000_000

// LedgerServiceError represents a ledger node error response
type LedgerServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *LedgerServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsAccountNotFound reports whether err says the account is not funded yet
func IsAccountNotFound(err error) bool {
	var ledgerErr *LedgerServiceError
	return errors.As(err, &ledgerErr) && ledgerErr.Code == LedgerCodeAccountNotFound
}

// Is4xxError checks if the error is a 4xx client error
func (e *LedgerServiceError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// ReceiptAwaiter waits for a submitted transaction to be validated
type ReceiptAwaiter interface {
	Await(ctx context.Context, txHash string) (*TransactionStatus, error)
}
