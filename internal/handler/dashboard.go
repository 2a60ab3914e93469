package handler

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/logger"
	"github.com/iliyamo/renttrack/internal/model"
)

func (h *Handler) Stats(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	s, err := h.API.DashboardStats(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) Activity(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list, err := h.API.RecentActivity(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) Users(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list, err := h.API.ListUsers(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetSettings(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	s, err := h.API.GetSettings(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var req model.Settings
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	s, err := h.API.UpdateSettings(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromContext(c).Info("settings updated", zap.Float64("ocr_accuracy", s.OCRAccuracy))
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) ExportTenants(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	exp, err := h.API.ExportTenantsCSV(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, exp)
}

func (h *Handler) ExportPayments(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	exp, err := h.API.ExportPaymentsCSV(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, exp)
}

func sendExport(c echo.Context, exp api.Export) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": exp.Filename}))
	return c.Blob(http.StatusOK, exp.ContentType, exp.Data)
}
