package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/logger"
	"github.com/iliyamo/renttrack/internal/model"
)

type resolverFunc func(string) (model.User, error)

func (f resolverFunc) UserForToken(token string) (model.User, error) { return f(token) }

var staticResolver = resolverFunc(func(token string) (model.User, error) {
	switch token {
	case "admin":
		return model.User{ID: "u-1", Role: model.SessionAdmin}, nil
	case "tenant":
		return model.User{ID: "u-2", Role: model.SessionTenant}, nil
	}
	return model.User{}, errors.New("unknown")
})

func newEcho() *echo.Echo {
	e := echo.New()
	e.Use(RequestID(zap.NewNop()), AccessLog(), Metrics)
	g := e.Group("", BearerAuth(staticResolver))
	g.GET("/me", func(c echo.Context) error {
		u, ok := CurrentUser(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, u.ID)
	})
	g.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, RequireRole(model.SessionAdmin))
	return e
}

func serve(e *echo.Echo, path, token string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBearerAuth(t *testing.T) {
	e := newEcho()

	rec := serve(e, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), api.CodeNotAuthenticated)

	rec = serve(e, "/me", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, "/me", "admin", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	e := newEcho()

	rec := serve(e, "/admin", "tenant", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), api.CodeForbidden)

	rec = serve(e, "/admin", "admin", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestID(t *testing.T) {
	e := newEcho()

	rec := serve(e, "/me", "admin", nil)
	_, err := uuid.Parse(rec.Header().Get(logger.RequestIDKey))
	require.NoError(t, err)

	id := uuid.NewString()
	rec = serve(e, "/me", "admin", map[string]string{logger.RequestIDKey: id})
	assert.Equal(t, id, rec.Header().Get(logger.RequestIDKey))

	rec = serve(e, "/me", "admin", map[string]string{logger.RequestIDKey: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(logger.RequestIDKey))
}
