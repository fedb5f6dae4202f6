package domain

import "context"

// SettingsRepository stores single string settings such as the active
// user pointer and the payment destination. Get returns "" when unset.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context, key string) error
}

// DestinationSpin is the reserved destination value that opens the rewards menu
const DestinationSpin = "spin"

// Destination is the configured payment destination
type Destination struct {
	Address   string `json:"address"`
	SpinMenu  bool   `json:"spin_menu"`
	IsDefault bool   `json:"is_default"`
}
