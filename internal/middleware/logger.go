package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger logs one line per request after it completes. NDJSON streaming
// responses (the bulk apply) are long-lived and already report progress
// event by event, so successful streams are marked and demoted to debug to
// keep the request log readable.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		streaming := strings.Contains(c.Writer.Header().Get("Content-Type"), "ndjson")

		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		case streaming:
			event = log.Debug().Bool("stream", true)
		}

		event.
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Dur("latency", latency).
			Int("size", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}
