package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/renttrack/internal/api"
)

func (h *Handler) ListProperties(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list, err := h.API.ListProperties(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetProperty(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	p, err := h.API.GetProperty(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProperty(c echo.Context) error {
	var req api.PropertyInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	p, err := h.API.CreateProperty(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdateProperty applies a partial update; absent fields are untouched.
func (h *Handler) UpdateProperty(c echo.Context) error {
	var req api.PropertyPatch
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	p, err := h.API.UpdateProperty(ctx, c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
