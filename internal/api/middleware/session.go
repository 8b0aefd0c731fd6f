package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session_token"

// Context keys populated by LoadSession.
const (
	ContextKeyEmployee = "employee"
	ContextKeyRole     = "role"
	ContextKeyToken    = "session_token"
)

// LoadSession resolves the session cookie into the employee it identifies and
// attaches it to the request context. Requests without a cookie, with an
// expired token, or whose employee has since been deleted proceed as
// anonymous — this middleware never fails a request.
func LoadSession(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			emp, err := auth.ResolveSession(c.Request().Context(), cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(ContextKeyEmployee, emp)
			c.Set(ContextKeyRole, emp.Role)
			c.Set(ContextKeyToken, cookie.Value)
			return next(c)
		}
	}
}

// CurrentEmployee returns the employee attached by LoadSession, or nil when
// the request is anonymous.
func CurrentEmployee(c echo.Context) *domain.Employee {
	emp, _ := c.Get(ContextKeyEmployee).(*domain.Employee)
	return emp
}
