package storage

import (
	"context"
	"fmt"

	"github.com/unmined/spinrewards/internal/config"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/database"
)

// Open builds the store selected by cfg.Storage.Driver. The returned
// function releases its connections.
func Open(ctx context.Context, cfg *config.Config) (domain.Store, func() error, error) {
	switch cfg.Storage.Driver {
	case "", config.StorageDriverMemory:
		return NewMemoryStore(), func() error { return nil }, nil

	case config.StorageDriverPostgres:
		db, err := database.NewDatabase(&database.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			Name:            cfg.Database.Name,
			SSLMode:         cfg.Database.SSLMode,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.GetDB().DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get sql db: %w", err)
		}
		return NewGormStore(db.GetDB()), sqlDB.Close, nil

	case config.StorageDriverRedis:
		client, err := NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(client, cfg.Redis.KeyPrefix), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
