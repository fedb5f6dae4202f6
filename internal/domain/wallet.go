package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountInfo is the validated ledger view of one account
type AccountInfo struct {
	Address     string `json:"address"`
	Drops       int64  `json:"drops"`
	LedgerIndex int64  `json:"ledger_index"`
}

// AccountTx is one entry of an account's transaction history.
// Drops is set for XRP payments; IssuedAmount holds "value currency"
// for payments in issued currencies.
type AccountTx struct {
	TxHash       string `json:"tx_hash"`
	Type         string `json:"type"`
	Account      string `json:"account"`
	Destination  string `json:"destination,omitempty"`
	Drops        int64  `json:"drops,omitempty"`
	IssuedAmount string `json:"issued_amount,omitempty"`
	Result       string `json:"result"`
	LedgerIndex  int64  `json:"ledger_index"`
	Date         int64  `json:"date"`
	Validated    bool   `json:"validated"`
}

// RippleEpoch is the unix time of the ledger's epoch, 2000-01-01 UTC.
// Ledger dates count seconds from it.
const RippleEpoch = 946684800

// PaymentReceipt records a payment sent to the destination
type PaymentReceipt struct {
	TxHash      string          `json:"tx_hash"`
	Account     string          `json:"account"`
	Destination string          `json:"destination"`
	XRP         decimal.Decimal `json:"xrp" swaggertype:"string"`
	Drops       int64           `json:"drops"`
	Result      string          `json:"result"`
	LedgerIndex int64           `json:"ledger_index"`
	Success     bool            `json:"success"`
}

// ReceiptRepository stores payment receipts by transaction hash
type ReceiptRepository interface {
	Get(ctx context.Context, txHash string) (*PaymentReceipt, error)
	Save(ctx context.Context, receipt *PaymentReceipt) error
}

// SentValueRepository keeps the XRP total successfully sent per wallet
type SentValueRepository interface {
	Get(ctx context.Context, address string) (decimal.Decimal, error)
	Set(ctx context.Context, address string, total decimal.Decimal) error
}
