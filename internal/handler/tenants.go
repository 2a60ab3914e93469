package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/renttrack/internal/api"
)

func (h *Handler) ListTenants(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list, err := h.API.ListTenants(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetTenant(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	t, err := h.API.GetTenant(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) CreateTenant(c echo.Context) error {
	var req api.TenantInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	t, err := h.API.CreateTenant(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// TenantLedger lists the payments of one tenant.
func (h *Handler) TenantLedger(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list, err := h.API.TenantLedger(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
