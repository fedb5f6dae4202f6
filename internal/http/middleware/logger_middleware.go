package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
)

// LoggerMiddleware logs every HTTP request once it has been served
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}

		log.WithRequest(logger.RequestFields{
			RequestID: c.GetString(ContextRequestID),
			SessionID: c.GetString(ContextSessionID),
			Username:  c.GetString(ContextUsername),
			Method:    c.Request.Method,
			Route:     route,
			ClientIP:  c.ClientIP(),
			Status:    c.Writer.Status(),
			Latency:   time.Since(start),
			Bytes:     size,
		}).Info("HTTP request processed")
	}
}
