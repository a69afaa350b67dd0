package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promptrelay.app/relay/internal/http/dto"
)

const panicMessage = "internal server error"

// Recovery answers a handler panic with a 500 JSON error. The panic is logged
// through slog and marked on the request span; gin's own stderr dump is discarded.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		ctx := c.Request.Context()

		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.RecordError(fmt.Errorf("panic: %v", recovered))
			span.SetStatus(codes.Error, panicMessage)
		}

		slog.ErrorContext(ctx, "panic recovered",
			"panic", fmt.Sprint(recovered),
			"route", c.FullPath(),
			"stack", string(debug.Stack()))

		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: panicMessage})
	})
}
