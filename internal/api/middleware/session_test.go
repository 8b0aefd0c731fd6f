package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// stubAuthService resolves a single known token.
type stubAuthService struct {
	token    string
	employee *domain.Employee
}

func (s *stubAuthService) Login(context.Context, int64, string) (string, *domain.Employee, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) ResolveSession(_ context.Context, token string) (*domain.Employee, error) {
	if token == s.token && s.employee != nil {
		return s.employee, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func (s *stubAuthService) ResetPassword(context.Context, int64, string) error { return nil }

func TestLoadSession_AttachesEmployee(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuthService{token: "tok-1", employee: &domain.Employee{ID: 7, Role: domain.RoleManager}}
	handler := LoadSession(auth)(func(c echo.Context) error {
		emp := CurrentEmployee(c)
		if emp == nil || emp.ID != 7 {
			t.Fatalf("employee not attached: %+v", emp)
		}
		if role, _ := c.Get(ContextKeyRole).(string); role != domain.RoleManager {
			t.Fatalf("role not attached: %q", role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestLoadSession_InvalidTokenIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuthService{token: "tok-1", employee: &domain.Employee{ID: 7}}
	handler := LoadSession(auth)(func(c echo.Context) error {
		if CurrentEmployee(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLoadSession_NoCookieIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LoadSession(&stubAuthService{})(func(c echo.Context) error {
		if CurrentEmployee(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
