package app

import (
	"context"

	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/infrastructure/storage"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitStore opens the configured key-value backend
func (a *application) InitStore(lc fx.Lifecycle, log *logger.Logger) (domain.Store, error) {
	store, closeFn, err := storage.Open(a.ctx, a.config)
	if err != nil {
		return nil, err
	}

	log.Info("Storage ready", zap.String("driver", a.config.Storage.Driver))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeFn()
		},
	})
	return store, nil
}
