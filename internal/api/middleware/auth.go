package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuthenticated rejects anonymous requests. API routes receive a 401
// JSON envelope; routes registered with redirect=true send the browser to the
// login page instead.
func RequireAuthenticated(redirect bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentEmployee(c) == nil {
				if redirect {
					return c.Redirect(http.StatusFound, "/login")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
