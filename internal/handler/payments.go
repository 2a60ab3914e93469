package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/renttrack/internal/api"
)

func (h *Handler) ListPayments(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list, err := h.API.ListPayments(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// MarkPaid settles one payment.
func (h *Handler) MarkPaid(c echo.Context) error {
	var req api.MarkPaidInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	p, err := h.API.MarkPaymentPaid(ctx, c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// ManualPayment records a payment taken outside the system.
func (h *Handler) ManualPayment(c echo.Context) error {
	var req api.ManualPaymentInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	p, err := h.API.RecordManualPayment(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// SweepOverdue flags late due payments.  The body is optional.
func (h *Handler) SweepOverdue(c echo.Context) error {
	var req api.SweepInput
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return badRequest(c, err)
		}
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	n, err := h.API.SweepOverduePayments(ctx, req.AsOf)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, api.CountResult{Count: n})
}
