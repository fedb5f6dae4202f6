package app

import (
	"github.com/unmined/spinrewards/internal/http/middleware"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
