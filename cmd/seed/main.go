package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"github.com/unmined/spinrewards/internal/config"
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/infrastructure/repository"
	"github.com/unmined/spinrewards/internal/infrastructure/seeder"
	"github.com/unmined/spinrewards/internal/infrastructure/storage"
	"github.com/unmined/spinrewards/internal/usecase/auth"
	"github.com/unmined/spinrewards/internal/usecase/balance"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", "development", "Environment")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Fatalf("Storage driver %q does not persist; seed a postgres or redis store", cfg.Storage.Driver)
	}

	ctx := context.Background()
	appLogger := logger.NewLogger(*configFile, cfg.Log.Level)
	defer appLogger.Sync()

	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeStore()

	registry := auth.NewRegistry(repository.NewCredentialRepository(store), appLogger)
	ledger := balance.NewLedger(
		repository.NewBalanceRepository(store),
		balance.BackdoorPolicy{Username: cfg.Rewards.BackdoorUser, Amount: cfg.Rewards.BackdoorAmount},
		lock.NewKeyedLockManager(appLogger),
		appLogger,
	)
	newSeeder := seeder.NewSeeder(registry, ledger, appLogger)

	log.Println("Starting seeding...")
	if _, err := newSeeder.SeedUsers(ctx, seeder.DemoUsers); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Println("Seeding completed successfully")
}

// loadConfig loads configuration from file
func loadConfig(configPath, configFile string) (*config.Config, error) {
	viper.SetConfigName(fmt.Sprintf("config.%s", configFile))
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("SPIN_REWARDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}
