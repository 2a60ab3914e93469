package handler // declare the package name; contains HTTP handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/logger"
)

// Handler serves the REST surface over any api.API implementation.
type Handler struct {
	API     api.API
	Timeout time.Duration // per-request budget for the backing call
}

// New returns a handler with a ten second request budget.
func New(a api.API) *Handler {
	return &Handler{API: a, Timeout: 10 * time.Second}
}

func (h *Handler) ctx(c echo.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(c.Request().Context())
	}
	return context.WithTimeout(c.Request().Context(), h.Timeout)
}

// writeError maps err onto {"error","code"} with the matching status.
func writeError(c echo.Context, err error) error {
	code, status := api.Classify(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromContext(c).Error("request failed", zap.String("code", code), zap.Error(err))
		if code == api.CodeInternal {
			msg = "internal error"
		}
	}
	return c.JSON(status, api.ErrorBody{Error: msg, Code: code})
}

// badRequest answers a body that could not be decoded.
func badRequest(c echo.Context, err error) error {
	msg := "invalid body"
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Internal != nil {
		msg = "invalid body: " + he.Internal.Error()
	}
	return c.JSON(http.StatusBadRequest, api.ErrorBody{Error: msg, Code: api.CodeValidation})
}
