package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/logger"
)

// RequestID tags each request with an id (reusing a valid inbound
// X-Request-ID) and stores a request-scoped logger on the context.
func RequestID(base *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(logger.RequestIDKey)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.New().String()
			}
			c.Request().Header.Set(logger.RequestIDKey, requestID)
			c.Response().Header().Set(logger.RequestIDKey, requestID)
			c.Set(logger.RequestIDKey, requestID)
			logger.WithContext(c, base.With(zap.String("request_id", requestID)))
			return next(c)
		}
	}
}

// AccessLog writes one structured line per request.
func AccessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err) // let echo write the response so the status is final
			}

			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", c.RealIP()),
			}
			log := logger.FromContext(c)
			if err != nil {
				log.Error("HTTP request failed", append(fields, zap.Error(err))...)
			} else {
				log.Info("HTTP request completed", fields...)
			}
			return nil
		}
	}
}
