package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/unmined/spinrewards/internal/domain"
)

// ReceiptRepository implements domain.ReceiptRepository on a Store
type ReceiptRepository struct {
	store domain.Store
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(store domain.Store) domain.ReceiptRepository {
	return &ReceiptRepository{store: store}
}

// Get decodes the receipt stored for txHash
func (r *ReceiptRepository) Get(ctx context.Context, txHash string) (*domain.PaymentReceipt, error) {
	raw, err := r.store.Get(ctx, domain.ReceiptKey(txHash))
	if err != nil {
		return nil, err
	}

	var receipt domain.PaymentReceipt
	if err := json.Unmarshal([]byte(raw), &receipt); err != nil {
		return nil, fmt.Errorf("%w: receipt %s: %v", domain.ErrCorruptValue, txHash, err)
	}
	return &receipt, nil
}

// Save writes the receipt as one JSON object keyed by its hash
func (r *ReceiptRepository) Save(ctx context.Context, receipt *domain.PaymentReceipt) error {
	data, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}
	return r.store.Set(ctx, domain.ReceiptKey(receipt.TxHash), string(data))
}

// SentValueRepository implements domain.SentValueRepository on a Store
type SentValueRepository struct {
	store domain.Store
}

// NewSentValueRepository creates a new sent value repository
func NewSentValueRepository(store domain.Store) domain.SentValueRepository {
	return &SentValueRepository{store: store}
}

// Get reads the XRP total sent from address
func (r *SentValueRepository) Get(ctx context.Context, address string) (decimal.Decimal, error) {
	raw, err := r.store.Get(ctx, domain.SentKey(address))
	if err != nil {
		return decimal.Zero, err
	}

	total, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: sent total %q: %v", domain.ErrCorruptValue, raw, err)
	}
	return total, nil
}

// Set stores the total as a decimal string
func (r *SentValueRepository) Set(ctx context.Context, address string, total decimal.Decimal) error {
	return r.store.Set(ctx, domain.SentKey(address), total.String())
}
