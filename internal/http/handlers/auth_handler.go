package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/http/middleware"
	"github.com/unmined/spinrewards/internal/infrastructure/auth"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/usecase/session"
	"go.uber.org/zap"
)

// AuthHandler handles sign in, sign out and the current user
type AuthHandler struct {
	sessions   *session.Manager
	jwtService auth.JWTService
	logger     *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager, jwtService auth.JWTService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		jwtService: jwtService,
		logger:     logger,
	}
}

// SignInRequest represents the sign-in request body
type SignInRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"hunter2"`
}

// SignInResponse represents the sign-in response body
type SignInResponse struct {
	Token string           `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  session.Snapshot `json:"user"`
}

// SignIn handles sign in. An unknown username is registered on first use.
// @Summary Sign in
// @Description Verify the password of a username, registering it on first use, and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} SignInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	sessionID := h.sessions.Create()

	var snapshot session.Snapshot
	err := h.sessions.With(ctx, sessionID, func(ctrl *session.Controller) error {
		if _, err := ctrl.SignIn(ctx, req.Username, req.Password); err != nil {
			return err
		}
		snapshot = ctrl.Snapshot()
		return nil
	})
	if err != nil {
		h.sessions.Remove(sessionID)
		middleware.RespondError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(sessionID, snapshot.Username)
	if err != nil {
		h.logger.Error("Failed to generate JWT token",
			zap.String("username", snapshot.Username),
			zap.Error(err))
		h.sessions.Remove(sessionID)
		middleware.RespondError(c, domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", http.StatusInternalServerError, err))
		return
	}

	c.JSON(http.StatusOK, SignInResponse{Token: token, User: snapshot})
}

// SignOut handles sign out
// @Summary Sign out
// @Description Forget the signed-in user of this session. Stored balance and inventory are kept.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		ctrl.SignOut(ctx)
		return nil
	}) {
		return
	}

	h.sessions.Remove(c.GetString(middleware.ContextSessionID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the signed-in user
// @Summary Current user
// @Description Get the username, effective balance and inventory of the session user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.Snapshot
// @Failure 401 {object} ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	var snapshot session.Snapshot
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		if _, ok := ctrl.ActiveUser(); !ok {
			return domain.NewAppError(domain.ErrCodeNotSignedIn, "Sign in first.", http.StatusUnauthorized, nil)
		}
		ctrl.Refresh(ctx)
		snapshot = ctrl.Snapshot()
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
