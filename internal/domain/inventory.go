package domain

import "context"

// InventoryRepository persists the saved-slot list of a user as one value
type InventoryRepository interface {
	Get(ctx context.Context, username string) ([]SpinOutcome, error)
	Set(ctx context.Context, username string, slots []SpinOutcome) error
}

// Inventory defines the bounded saved-slot collection
type Inventory interface {
	List(ctx context.Context, username string) []SpinOutcome
	Save(ctx context.Context, username string, outcome SpinOutcome) bool
	Remove(ctx context.Context, username string, index int) bool
	Capacity() int
}
