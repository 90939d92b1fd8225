package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger emits one structured access log line per request. When the
// request passed an auth guard, the authenticated author id is
// included.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)

		event := log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency_ms", latency).
			Str("ip", c.ClientIP())

		if a, ok := AuthorFromContext(c); ok {
			event = event.Str("author_id", a.ID.String())
		}

		event.Msg("HTTP Request")
	}
}
