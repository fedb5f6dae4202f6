package app

import (
	"github.com/unmined/spinrewards/internal/http"
	"github.com/unmined/spinrewards/internal/http/handlers"
	"github.com/unmined/spinrewards/internal/infrastructure/auth"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/usecase/payment"
	"github.com/unmined/spinrewards/internal/usecase/session"
	"github.com/unmined/spinrewards/internal/usecase/settings"
	"github.com/unmined/spinrewards/internal/usecase/wallet"
)

func (a *application) InitHandlers(
	sessions *session.Manager,
	jwt auth.JWTService,
	destinations *settings.DestinationService,
	payments *payment.Service,
	wallets *wallet.Service,
	log *logger.Logger,
) http.Handlers {
	return http.Handlers{
		Auth:   handlers.NewAuthHandler(sessions, jwt, log),
		Spin:   handlers.NewSpinHandler(sessions),
		Game:   handlers.NewGameHandler(sessions),
		Wallet: handlers.NewWalletHandler(sessions, destinations, payments, wallets, log),
	}
}
