package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirestack/jobboard-go/pkg/logging"
)

// RequestLogger logs one line per request with latency and status.
func RequestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
