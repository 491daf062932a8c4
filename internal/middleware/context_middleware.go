package middleware

import (
	"go-hris-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger puts a logger scoped to the request and session into the
// request context, so controllers and repositories never need gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		// RequestID() biasanya sudah jalan; kalau route dipasang tanpa itu, buat baru
		rid := c.GetString("request_id")
		if rid == "" {
			rid = uuid.New().String()
			c.Set("request_id", rid)
			c.Header(RequestIDHeader, rid)
		}

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		ctx = contextutil.WithSessionID(ctx, c.GetString("session_id"))
		ctx = contextutil.WithLogger(ctx, logger.With(contextutil.ExtractMetadata(ctx).Fields()...))

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
