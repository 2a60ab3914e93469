package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/logger"
	"github.com/iliyamo/renttrack/internal/metrics"
	"github.com/iliyamo/renttrack/internal/middleware"
)

// Login: check the shared password and return token + user.
func (h *Handler) Login(c echo.Context) error {
	var req api.LoginInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.API.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if errors.Is(err, api.ErrInvalidCredentials) {
		metrics.RecordAuthAttempt(false)
		logger.FromContext(c).Info("login rejected", zap.String("email", req.Email))
	}
	if err != nil {
		return writeError(c, err)
	}
	metrics.RecordAuthAttempt(true)
	logger.FromContext(c).Info("login", zap.String("user_id", res.User.ID), zap.String("role", string(res.User.Role)))
	return c.JSON(http.StatusOK, res)
}

// ForgotPassword always answers ok.
func (h *Handler) ForgotPassword(c echo.Context) error {
	var req api.ForgotPasswordInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	if err := h.API.ForgotPassword(ctx, req.Email); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Me returns the user resolved from the bearer token.
func (h *Handler) Me(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, api.ErrNotAuthenticated)
	}
	return c.JSON(http.StatusOK, u)
}
