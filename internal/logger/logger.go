// Package logger provides the process-wide zap logger and request-scoped
// children carrying the request id.
package logger

import (
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDKey is both the header name and the echo context key.
const RequestIDKey = "X-Request-ID"

const contextKey = "logger"

var (
	mu       sync.Mutex
	instance *zap.Logger
)

// New builds a production JSON logger writing to stdout at the given level
// (debug, info, warn, error).  Unknown levels fall back to info.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// Init replaces the process logger.
func Init(level string) (*zap.Logger, error) {
	l, err := New(level)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	instance = l
	mu.Unlock()
	return l, nil
}

// GetLogger returns the process logger, building an info-level one on
// first use when Init was never called.
func GetLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		l, err := New("info")
		if err != nil {
			panic(err)
		}
		instance = l
	}
	return instance
}

// WithContext stores l on the echo context.
func WithContext(c echo.Context, l *zap.Logger) {
	c.Set(contextKey, l)
}

// FromContext returns the request logger, or the process logger tagged
// with whatever request id is available.
func FromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get(contextKey).(*zap.Logger); ok {
		return l
	}
	requestID, ok := c.Get(RequestIDKey).(string)
	if !ok {
		requestID = c.Request().Header.Get(RequestIDKey)
		if requestID == "" {
			requestID = "unknown"
		}
	}
	return GetLogger().With(zap.String("request_id", requestID))
}
