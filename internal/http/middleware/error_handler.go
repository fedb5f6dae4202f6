package middleware

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Context keys set by the middleware chain
const (
	ContextRequestID = "request_id"
	ContextSessionID = "session_id"
	ContextUsername  = "username"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// ErrorHandlerMiddleware recovers panics into a 500 error response
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.handlePanic(c, recovered)
	})
}

func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	h.logger.Error("PANIC recovered",
		zap.String("request_id", c.GetString(ContextRequestID)),
		zap.String("username", c.GetString(ContextUsername)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("error", recovered),
		zap.String("stack", string(debug.Stack())))

	RespondError(c, domain.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered)))
}

// RequestIDMiddleware adds a unique request ID to each request
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// TimeoutMiddleware bounds the request context. Ledger calls and lock
// waits observe the deadline and fail with their own errors.
func (h *ErrorHandler) TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RespondError writes err as the standard error response. Errors that are
// not AppErrors are reported as internal errors.
func RespondError(c *gin.Context, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("", err)
	}

	appErr.RequestID = c.GetString(ContextRequestID)
	appErr.Username = c.GetString(ContextUsername)
	appErr.Path = c.Request.URL.Path
	appErr.Method = c.Request.Method

	c.AbortWithStatusJSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
}
