package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces an exact-match role check. The comparison is plain
// string equality with no hierarchy: an admin does not satisfy a manager
// requirement. Anonymous requests fail the check the same way.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := c.Get(ContextKeyRole).(string)
			if current != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
