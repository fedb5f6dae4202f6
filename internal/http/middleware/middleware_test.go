package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/config"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/auth"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
)

type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		Path      string `json:"path"`
	} `json:"error"`
	Success bool `json:"success"`
}

func newRouter() (*gin.Engine, auth.JWTService) {
	gin.SetMode(gin.TestMode)
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "s", Expiry: time.Hour})
	h := NewErrorHandler(logger.NewNop())

	r := gin.New()
	r.Use(h.RequestIDMiddleware(), h.ErrorHandlerMiddleware(), LoggerMiddleware(logger.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/plain", func(c *gin.Context) { RespondError(c, errors.New("unexpected")) })
	r.GET("/me", JWTMiddleware(jwtSvc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sid": c.GetString(ContextSessionID), "user": c.GetString(ContextUsername)})
	})
	return r, jwtSvc
}

func TestJWTMiddleware(t *testing.T) {
	r, jwtSvc := newRouter()

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized, code: domain.ErrCodeTokenMissing},
		{name: "not_bearer", header: "Token abc", status: http.StatusUnauthorized, code: domain.ErrCodeTokenInvalid},
		{name: "garbage", header: "Bearer abc", status: http.StatusUnauthorized, code: domain.ErrCodeTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Error.RequestID)
		})
	}

	token, err := jwtSvc.GenerateToken("sid-9", "alice")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sid":"sid-9","user":"alice"}`, w.Body.String())
}

func TestPanicAndPlainErrors(t *testing.T) {
	r, _ := newRouter()

	for _, path := range []string{"/panic", "/plain"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Request-ID", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, path, body.Error.Path)
	}
}
