package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feeling-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/feeling-quotes/internal/platform/logging"
)

// MsgInternalError is the body returned for recovered panics.
const MsgInternalError = "an internal error occurred"

// Recovery returns middleware that recovers from panics.
// The panic and its stack are logged at ERROR with the context logger and
// the client receives a 500 JSON error body. Apply it first in the chain.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctx := c.Request.Context()
			logging.FromContext(ctx).ErrorContext(ctx, "panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
			)

			// Headers already sent, nothing left to write.
			if c.Writer.Written() {
				c.Abort()
				return
			}

			dto.AbortWithErrorCode(c, dto.ErrorCodeInternal, MsgInternalError)
		}()

		c.Next()
	}
}
