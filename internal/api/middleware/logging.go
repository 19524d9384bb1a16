package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/primecore/internal/infrastructure/tracing"
)

// AccessLog logs one structured line per request. Server errors log at
// error level, client errors at warn, everything else at debug.
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := zapcore.DebugLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}

		ce := logger.Check(level, "request")
		if ce == nil {
			return
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		ctx := c.Request.Context()
		if traceID := tracing.GetTraceID(ctx); traceID != "" {
			fields = append(fields,
				zap.String("trace_id", traceID.String()),
				zap.String("trace", tracing.FormatTrace(traceID, tracing.GetSpanID(ctx))),
			)
		}
		ce.Write(fields...)
	}
}
