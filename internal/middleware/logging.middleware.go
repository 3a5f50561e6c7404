package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware provides request logging functionality
type LoggingMiddleware struct {
	config *MiddlewareConfig
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(config *MiddlewareConfig) *LoggingMiddleware {
	return &LoggingMiddleware{
		config: config,
	}
}

// RequestLogger provides request logging middleware
func (l *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.config.LoggingEnabled {
			c.Next()
			return
		}

		start := time.Now()

		requestID := generateRequestID()
		c.Set("requestId", requestID)

		logger := l.createRequestLogger(c, requestID)

		logger.Info("Request started",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("referer", c.GetHeader("Referer")))

		c.Next()

		duration := time.Since(start)

		logger.Info("Request completed",
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
			zap.Duration("duration", duration),
			zap.String("error", c.Errors.String()))

		// Log slow requests
		if duration > 5*time.Second {
			logger.Warn("Slow request detected",
				zap.Duration("duration", duration),
				zap.String("path", c.Request.URL.Path))
		}
	}
}

// createRequestLogger creates a logger with request context
func (l *LoggingMiddleware) createRequestLogger(c *gin.Context, requestID string) *zap.Logger {
	fields := []zap.Field{
		zap.String("requestId", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	}

	if l.config.LogIPAddress {
		fields = append(fields, zap.String("ip", getClientIP(c)))
	}

	if l.config.LogUserAgent {
		fields = append(fields, zap.String("userAgent", c.GetHeader("User-Agent")))
	}

	return zap.L().With(fields...)
}

// ErrorLogger provides error logging middleware
func (l *LoggingMiddleware) ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			requestID := c.GetString("requestId")
			logger := zap.L().With(zap.String("requestId", requestID))

			for _, err := range c.Errors {
				logger.Error("Request error",
					zap.String("error", err.Error()),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method))
			}
		}
	}
}

// SecurityLogger logs authentication attempts and failures. Credentials and
// tokens themselves are never logged.
func (l *LoggingMiddleware) SecurityLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		requestID := c.GetString("requestId")
		logger := zap.L().With(zap.String("requestId", requestID))

		if c.Request.Method == http.MethodPost &&
			(c.Request.URL.Path == "/api/v1/auth/login" || c.Request.URL.Path == "/api/v1/auth/signup") {
			logger.Info("Authentication attempt",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", getClientIP(c)),
				zap.String("userAgent", c.GetHeader("User-Agent")))
		}

		if c.Writer.Status() == http.StatusUnauthorized {
			logger.Warn("Authentication failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", getClientIP(c)),
				zap.String("userAgent", c.GetHeader("User-Agent")))
		}
	}
}
