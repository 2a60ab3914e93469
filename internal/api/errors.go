package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors.  Adapters wrap these with context; callers test with
// errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrValidation         = errors.New("validation failed")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrTimeout            = errors.New("timed out")
	ErrForbidden          = errors.New("forbidden")
	ErrUploadFailed       = errors.New("upload processing failed")
)

// Wire codes carried in the "code" field of error bodies.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotAuthenticated   = "NOT_AUTHENTICATED"
	CodeValidation         = "VALIDATION_FAILED"
	CodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	CodeTimeout            = "TIMEOUT"
	CodeForbidden          = "FORBIDDEN"
	CodeUploadFailed       = "UPLOAD_FAILED"
	CodeInternal           = "INTERNAL"
)

var codeTable = []struct {
	err    error
	code   string
	status int
}{
	{ErrNotFound, CodeNotFound, http.StatusNotFound},
	{ErrInvalidCredentials, CodeInvalidCredentials, http.StatusUnauthorized},
	{ErrNotAuthenticated, CodeNotAuthenticated, http.StatusUnauthorized},
	{ErrValidation, CodeValidation, http.StatusBadRequest},
	{ErrBackendUnavailable, CodeBackendUnavailable, http.StatusServiceUnavailable},
	{ErrTimeout, CodeTimeout, http.StatusGatewayTimeout},
	{ErrForbidden, CodeForbidden, http.StatusForbidden},
	{ErrUploadFailed, CodeUploadFailed, http.StatusUnprocessableEntity},
}

// Classify returns the wire code and HTTP status for err.  Context
// deadlines map to TIMEOUT; anything unrecognised is INTERNAL/500.
func Classify(err error) (code string, status int) {
	for _, e := range codeTable {
		if errors.Is(err, e.err) {
			return e.code, e.status
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CodeTimeout, http.StatusGatewayTimeout
	}
	return CodeInternal, http.StatusInternalServerError
}

// SentinelFor returns the sentinel for a wire code, or nil.
func SentinelFor(code string) error {
	for _, e := range codeTable {
		if e.code == code {
			return e.err
		}
	}
	return nil
}

// sentinelForStatus is the fallback when a response carries no code.
func sentinelForStatus(status int) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrNotAuthenticated
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusNotImplemented, http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrBackendUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrTimeout
	}
	return nil
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError is a non-2xx response from the HTTP backend.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Body    []byte
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("http %d %s: %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("http %d: %s", e.Status, msg)
}

// Unwrap exposes the sentinel named by Code, falling back to one derived
// from Status.
func (e *HTTPError) Unwrap() error {
	if s := SentinelFor(e.Code); s != nil {
		return s
	}
	return sentinelForStatus(e.Status)
}
