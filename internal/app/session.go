package app

import (
	"context"

	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/usecase/funding"
	"github.com/unmined/spinrewards/internal/usecase/plinko"
	"github.com/unmined/spinrewards/internal/usecase/session"
	"go.uber.org/fx"
)

// SessionParams are the collaborators shared by every session controller
type SessionParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Auth      domain.AuthRegistry
	Balances  domain.BalanceLedger
	Inventory domain.Inventory
	Settings  domain.SettingsRepository
	Engine    domain.SpinEngine
	Board     *plinko.Board
	Random    domain.Random
	Funding   *funding.Service
	Locks     *lock.KeyedLockManager
	Logger    *logger.Logger
}

// InitSessionManager builds the session manager and ties its janitor to the app lifecycle
func (a *application) InitSessionManager(p SessionParams) *session.Manager {
	factory := session.NewFactory(session.Dependencies{
		Auth:              p.Auth,
		Balances:          p.Balances,
		Inventory:         p.Inventory,
		Settings:          p.Settings,
		Engine:            p.Engine,
		Board:             p.Board,
		Random:            p.Random,
		Funder:            p.Funding,
		Logger:            p.Logger,
		MaxBatch:          a.config.Rewards.MaxBatch,
		SpinRevealDelay:   a.config.Rewards.SpinRevealDelay,
		PlinkoSettleDelay: a.config.Rewards.PlinkoSettleDelay,
	})

	manager := session.NewManager(factory, p.Locks, a.config.JWT.Expiry, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			manager.StartJanitor()
			return nil
		},
		OnStop: func(context.Context) error {
			manager.StopJanitor()
			return nil
		},
	})
	return manager
}
