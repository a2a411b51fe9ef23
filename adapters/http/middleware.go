package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

const (
	HeaderRequestID        = "X-Request-ID"
	GinContextKeyRequestID = "requestID"
	GinContextKeyLogger    = "logger"
)

// RequestID reuses an inbound X-Request-ID or mints one, echoes it on the
// response and attaches a request-scoped logger.
func RequestID(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, id)
		c.Set(GinContextKeyLogger, log.With(zap.String("request_id", id)))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		GetLoggerFromGinContext(c).Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// ErrorMiddleware renders the last error a handler attached with c.Error,
// unless the handler already wrote a response.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}
		status := apperror.ToHTTPStatus(appErr)

		body := appErr.ToJSON()
		if errors.Is(appErr, apperror.ErrInvalidInput) {
			body["details"] = appErr.Details
		}
		if status >= 500 {
			GetLoggerFromGinContext(c).Error("Request failed", err, zap.Int("status", status))
		}
		c.AbortWithStatusJSON(status, body)
	}
}

func GetRequestIDFromGinContext(c *gin.Context) string {
	return c.GetString(GinContextKeyRequestID)
}

func GetLoggerFromGinContext(c *gin.Context) logger.Logger {
	if l, ok := c.Get(GinContextKeyLogger); ok {
		if log, ok := l.(logger.Logger); ok {
			return log
		}
	}
	return logger.NewNop()
}
