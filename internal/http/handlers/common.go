package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/http/middleware"
	"github.com/unmined/spinrewards/internal/usecase/session"
)

// ErrorResponse documents the error envelope for swagger
type ErrorResponse = domain.ErrorResponse

// withSession runs fn on the controller of the caller's session and
// writes the error response when it fails
func withSession(c *gin.Context, sessions *session.Manager, fn func(ctrl *session.Controller) error) bool {
	sessionID := c.GetString(middleware.ContextSessionID)
	if err := sessions.With(c.Request.Context(), sessionID, fn); err != nil {
		middleware.RespondError(c, err)
		return false
	}
	return true
}

// bindJSON binds the request body and writes a 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.RespondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return false
	}
	return true
}
