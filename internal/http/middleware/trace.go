package middleware

import (
	"github.com/gin-gonic/gin"

	"aihub.app/api/common/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestTrace attaches a request trace to the context and emits it once the
// request finishes. An incoming X-Request-ID is reused.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		trace := logger.NewTrace(c.GetHeader(RequestIDHeader))
		ctx := logger.WithTrace(c.Request.Context(), trace)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, trace.RequestID)

		c.Next()

		// handlers may have enriched the context with tenant fields
		trace.Emit(c.Request.Context())
	}
}
