package middleware

import (
	"github.com/gin-gonic/gin"

	"promptrelay.app/relay/common/id"
	"promptrelay.app/relay/common/logger"
)

// RequestID echoes the caller's request id or mints a snowflake one, and puts it
// in the request context for log enrichment.
func RequestID(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(header)
		if requestID == "" {
			requestID = id.NewRequestID()
		}

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
			Component: "relay.http",
		})
		c.Request = c.Request.WithContext(ctx)
		c.Header(header, requestID)

		c.Next()
	}
}
