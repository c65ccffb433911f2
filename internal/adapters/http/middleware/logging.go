package middleware

import (
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/feeling-quotes/internal/platform/logging"
)

// ContextKeyTraceID is the gin context key holding the request's trace ID.
const ContextKeyTraceID = "trace_id"

// ContextLogger returns middleware that stores logger in the request context.
// It must run before RequestID and CorrelationID, which enrich that logger.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger != nil {
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		}

		c.Next()
	}
}

// Logging returns middleware that logs completed HTTP requests.
// Requests whose path starts with one of skipPrefixes are not logged.
// Static asset requests are logged at DEBUG so page loads don't drown
// the API traffic.
//
// When a span is active its trace ID is added to the context logger and
// stored under ContextKeyTraceID for error responses.
func Logging(skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if span := trace.SpanFromContext(ctx); span.SpanContext().HasTraceID() {
			traceID := span.SpanContext().TraceID().String()
			c.Set(ContextKeyTraceID, traceID)
			ctx = logging.WithTraceID(ctx, traceID)
			c.Request = c.Request.WithContext(ctx)
		}

		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()

		target := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			target = target + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logging.FromContext(ctx).Log(ctx, requestLevel(c.Request.URL.Path, status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// requestLevel picks the log level from the response status.
func requestLevel(urlPath string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case isAsset(urlPath):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// isAsset reports whether urlPath names a static file rather than an API route.
func isAsset(urlPath string) bool {
	return urlPath == "/" || path.Ext(urlPath) != ""
}
