package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/renttrack/internal/api"
)

// MaxUploadBytes caps the size of an uploaded document.
const MaxUploadBytes = 10 << 20

// Upload accepts multipart field "file" and answers 202 with the upload id.
func (h *Handler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fmt.Errorf("%w: multipart field \"file\" is required", api.ErrValidation))
	}
	if fh.Size > MaxUploadBytes {
		return writeError(c, fmt.Errorf("%w: file exceeds %d bytes", api.ErrValidation, MaxUploadBytes))
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return writeError(c, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	id, err := h.API.UploadFile(ctx, api.FileUpload{
		Name: fh.Filename,
		Type: fh.Header.Get(echo.HeaderContentType),
		Size: int64(len(data)),
		Data: data,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, api.UploadResult{ID: id})
}

// GetUpload returns the current upload snapshot.
func (h *Handler) GetUpload(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	u, err := h.API.GetUploadParsed(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteUpload removes an upload and its pending job.
func (h *Handler) DeleteUpload(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	if err := h.API.DeleteUpload(ctx, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Reprocess re-queues failed uploads.
func (h *Handler) Reprocess(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	n, err := h.API.ReprocessFailedOCR(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, api.CountResult{Count: n})
}
