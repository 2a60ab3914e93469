package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/model"
)

// Context keys set by BearerAuth.
const (
	UserKey = "user"
	RoleKey = "role"
)

// TokenResolver turns a bearer token into the user it identifies.
type TokenResolver interface {
	UserForToken(token string) (model.User, error)
}

// BearerAuth returns an Echo middleware that resolves the Bearer token and
// injects the user and its role into the request context.  Handlers read
// them back with CurrentUser.
func BearerAuth(r TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the token.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, api.ErrorBody{Error: "missing bearer token", Code: api.CodeNotAuthenticated})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

			user, err := r.UserForToken(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorBody{Error: "invalid token", Code: api.CodeNotAuthenticated})
			}
			c.Set(UserKey, user)
			c.Set(RoleKey, user.Role)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by BearerAuth.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(UserKey).(model.User)
	return u, ok
}
