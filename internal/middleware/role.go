package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/model"
)

// RequireRole returns a middleware function that enforces that the
// authenticated user has one of the specified session roles.  It assumes
// BearerAuth ran first and stored the role under RoleKey.  Anything else
// is answered with 403 Forbidden.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(RoleKey).(model.Role)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, api.ErrorBody{Error: "forbidden", Code: api.CodeForbidden})
			}
			return next(c)
		}
	}
}
