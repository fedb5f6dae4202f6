package app

import (
	"github.com/google/uuid"
	"github.com/unmined/spinrewards/internal/infrastructure/auth"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// InitJWTService signs session tokens. Without a configured secret a
// random one is drawn, so issued tokens stop validating after a restart.
func (a *application) InitJWTService(log *logger.Logger) auth.JWTService {
	cfg := a.config.JWT
	if cfg.Secret == "" {
		cfg.Secret = uuid.NewString() + uuid.NewString()
		log.Warn("No JWT secret configured, sessions will not survive a restart")
	}
	log.Debug("JWT service ready", zap.Duration("expiry", cfg.Expiry))
	return auth.NewJWTService(&cfg)
}
