package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore/internal/pkg/log"
)

// RequestLogger logs every request outcome and recovers from panics.
// Failures are logged here, server-side, before the translated client
// message leaves the process.
func RequestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logger.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Str("client_ip", c.ClientIP()).
					Dur("latency", time.Since(start)).
					Str("stack", string(debug.Stack())).
					Err(err).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			event := logger.Info()
			if c.Writer.Status() >= http.StatusInternalServerError {
				event = logger.Error()
			} else if c.Writer.Status() >= http.StatusBadRequest {
				event = logger.Warn()
			}
			for _, ginErr := range c.Errors {
				event = event.Str("error", ginErr.Error())
			}
			event.
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Str("client_ip", c.ClientIP()).
				Int64("user_id", c.GetInt64(ctxUserID)).
				Str("role", c.GetString(ctxRole)).
				Dur("latency", time.Since(start)).
				Msg("request")
		}()

		c.Next()
	}
}
