package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Rewards  RewardsConfig  `mapstructure:"rewards"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// StorageConfig selects the durable key-value backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // memory, postgres or redis
}

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// RedisConfig holds redis connection configuration
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// LedgerConfig holds the ledger node configuration
type LedgerConfig struct {
	URL          string        `mapstructure:"url"`
	BankAddress  string        `mapstructure:"bank_address"`
	Timeout      time.Duration `mapstructure:"timeout"`
	RetryMax     int           `mapstructure:"retry_max"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	PollTimeout  time.Duration `mapstructure:"poll_timeout"`
}

// RewardsConfig holds the spin economy constants
type RewardsConfig struct {
	BackdoorUser       string        `mapstructure:"backdoor_user"`
	BackdoorAmount     int64         `mapstructure:"backdoor_amount"`
	XRPPerSpin         string        `mapstructure:"xrp_per_spin"`
	MaxBatch           int           `mapstructure:"max_batch"`
	SavedMax           int           `mapstructure:"saved_max"`
	SpinRevealDelay    time.Duration `mapstructure:"spin_reveal_delay"`
	PlinkoSettleDelay  time.Duration `mapstructure:"plinko_settle_delay"`
	DefaultDestination string        `mapstructure:"default_destination"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default reward constants
const (
	DefaultBackdoorUser       = "tyspn"
	DefaultBackdoorAmount     = 999999999
	DefaultXRPPerSpin         = "0.1"
	DefaultMaxBatch           = 10
	DefaultSavedMax           = 8
	DefaultSpinRevealDelay    = 2400 * time.Millisecond
	DefaultPlinkoSettleDelay  = 600 * time.Millisecond
	DefaultDestinationAddress = "rnLDsmcYdsFiP9iad1dmaFJwy2VLRPsHNa"
	DefaultLedgerURL          = "https://s.altnet.rippletest.net:51234"
)

// ApplyDefaults fills zero values with the built-in defaults
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverMemory
	}
	if c.JWT.Expiry == 0 {
		c.JWT.Expiry = 24 * time.Hour
	}
	if c.Ledger.URL == "" {
		c.Ledger.URL = DefaultLedgerURL
	}
	if c.Ledger.Timeout == 0 {
		c.Ledger.Timeout = 30 * time.Second
	}
	if c.Ledger.RetryMax == 0 {
		c.Ledger.RetryMax = 3
	}
	if c.Ledger.PollInterval == 0 {
		c.Ledger.PollInterval = time.Second
	}
	if c.Ledger.PollTimeout == 0 {
		c.Ledger.PollTimeout = 30 * time.Second
	}
	if c.Ledger.BankAddress == "" {
		c.Ledger.BankAddress = DefaultDestinationAddress
	}
	if c.Rewards.BackdoorUser == "" {
		c.Rewards.BackdoorUser = DefaultBackdoorUser
	}
	if c.Rewards.BackdoorAmount == 0 {
		c.Rewards.BackdoorAmount = DefaultBackdoorAmount
	}
	if c.Rewards.XRPPerSpin == "" {
		c.Rewards.XRPPerSpin = DefaultXRPPerSpin
	}
	if c.Rewards.MaxBatch == 0 {
		c.Rewards.MaxBatch = DefaultMaxBatch
	}
	if c.Rewards.SavedMax == 0 {
		c.Rewards.SavedMax = DefaultSavedMax
	}
	if c.Rewards.SpinRevealDelay == 0 {
		c.Rewards.SpinRevealDelay = DefaultSpinRevealDelay
	}
	if c.Rewards.PlinkoSettleDelay == 0 {
		c.Rewards.PlinkoSettleDelay = DefaultPlinkoSettleDelay
	}
	if c.Rewards.DefaultDestination == "" {
		c.Rewards.DefaultDestination = DefaultDestinationAddress
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("SPIN_REWARDS_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
