package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/api/middleware"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// AuthHandler handles login, logout, and administrator password resets.
type AuthHandler struct {
	authService ports.AuthService
	cookieTTL   time.Duration
	production  bool
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration, production bool) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL, production: production}
}

// Login handles POST /login.
//
// @Summary      Log in with employee id and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, emp, err := h.authService.Login(c.Request().Context(), req.EmployeeID, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, h.cookieTTL))
	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		User:    toEmployeeResponse(emp),
	})
}

// Logout handles POST /logout. The session is revoked server-side and the
// cookie expired client-side.
//
// @Summary      Log out and destroy the session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.ContextKeyToken).(string)
	if token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// ResetPassword handles POST /reset-password (admin only).
//
// @Summary      Reset an employee's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Target employee and new password"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.EmployeeID, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// Protected handles GET /protected, a plaintext probe for an authenticated
// session.
//
// @Summary      Confirm the session is authenticated
// @Tags         auth
// @Produce      plain
// @Success      200  {string}  string
// @Router       /protected [get]
func (h *AuthHandler) Protected(c echo.Context) error {
	emp := middleware.CurrentEmployee(c)
	return c.String(http.StatusOK, "authenticated as "+emp.Name)
}

func (h *AuthHandler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	}
}
