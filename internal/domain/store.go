package domain

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/unmined/spinrewards/internal/domain Store

// ErrKeyNotFound is returned by a Store when a key has no value
var ErrKeyNotFound = errors.New("key not found")

// Store is the durable key-value port used by every registry in the core.
// Each Set replaces the whole value in a single write.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Storage keys
const (
	KeyActiveUser  = "activeUser"
	KeyDestination = "destination"

	prefixSavedSlots = "savedSlots:"
	prefixBalance    = "balance:"
	prefixAuth       = "auth:"
	prefixReceipt    = "receipts:"
	prefixSent       = "sent:"
)

// SavedSlotsKey returns the inventory key for username
func SavedSlotsKey(username string) string {
	return prefixSavedSlots + username
}

// BalanceKey returns the balance key for username
func BalanceKey(username string) string {
	return prefixBalance + username
}

// AuthKey returns the credential key for username
func AuthKey(username string) string {
	return prefixAuth + username
}

// ReceiptKey returns the payment receipt key for a transaction hash
func ReceiptKey(txHash string) string {
	return prefixReceipt + txHash
}

// SentKey returns the key of the XRP total sent from address
func SentKey(address string) string {
	return prefixSent + address
}

// ErrCorruptValue is returned by repositories when a stored value cannot be decoded
var ErrCorruptValue = errors.New("corrupt stored value")
