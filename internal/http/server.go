package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unmined/spinrewards/internal/http/handlers"
	"github.com/unmined/spinrewards/internal/http/middleware"
	"github.com/unmined/spinrewards/internal/infrastructure/auth"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// RequestTimeout bounds every request; it leaves room for the ledger poll
const RequestTimeout = 60 * time.Second

// Handlers groups the route handlers
type Handlers struct {
	Auth   *handlers.AuthHandler
	Spin   *handlers.SpinHandler
	Game   *handlers.GameHandler
	Wallet *handlers.WalletHandler
}

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	jwtService   auth.JWTService
	handlers     Handlers
	errorHandler *middleware.ErrorHandler
	logger       *logger.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	h Handlers,
	errorHandler *middleware.ErrorHandler,
	logger *logger.Logger,
	addr string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(RequestTimeout))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))

	server := &Server{
		router:       router,
		jwtService:   jwtService,
		handlers:     h,
		errorHandler: errorHandler,
		logger:       logger,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/auth/signin", s.handlers.Auth.SignIn)

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			protected.POST("/auth/signout", s.handlers.Auth.SignOut)
			protected.GET("/me", s.handlers.Auth.Me)

			spinRoutes := protected.Group("/spins")
			{
				spinRoutes.POST("", s.handlers.Spin.Spin)
				spinRoutes.GET("/reveal", s.handlers.Spin.Reveal)
				spinRoutes.POST("/reveal/next", s.handlers.Spin.Next)
				spinRoutes.GET("/results", s.handlers.Spin.Results)
			}

			inventoryRoutes := protected.Group("/inventory")
			{
				inventoryRoutes.GET("", s.handlers.Spin.Inventory)
				inventoryRoutes.POST("", s.handlers.Spin.Save)
				inventoryRoutes.DELETE("/:index", s.handlers.Spin.Remove)
			}

			blackjackRoutes := protected.Group("/blackjack")
			{
				blackjackRoutes.GET("", s.handlers.Game.Blackjack)
				blackjackRoutes.POST("/bet", s.handlers.Game.Bet)
				blackjackRoutes.POST("/hit", s.handlers.Game.Hit)
				blackjackRoutes.POST("/stand", s.handlers.Game.Stand)
				blackjackRoutes.POST("/reset", s.handlers.Game.Reset)
			}

			protected.POST("/plinko/drop", s.handlers.Game.Drop)
			protected.POST("/funding/buy", s.handlers.Wallet.BuySpins)

			settingsRoutes := protected.Group("/settings")
			{
				settingsRoutes.GET("/destination", s.handlers.Wallet.Destination)
				settingsRoutes.PUT("/destination", s.handlers.Wallet.SetDestination)
			}

			walletRoutes := protected.Group("/wallet")
			{
				walletRoutes.POST("/balance", s.handlers.Wallet.Balance)
				walletRoutes.POST("/history", s.handlers.Wallet.History)
			}

			protected.POST("/payments", s.handlers.Wallet.Send)
			protected.GET("/payments/:tx_hash", s.handlers.Wallet.Receipt)
		}
	}
}

// Handler exposes the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
