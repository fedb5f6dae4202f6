package app

import (
	"context"

	"github.com/unmined/spinrewards/internal/http"
	"github.com/unmined/spinrewards/internal/http/middleware"
	"github.com/unmined/spinrewards/internal/infrastructure/auth"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	h http.Handlers,
	jwtService auth.JWTService,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	return http.NewServer(jwtService, h, errorHandler, log, a.config.GetServerAddress())
}

// registerServer starts serving once the graph is built and drains on stop
func (a *application) registerServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
