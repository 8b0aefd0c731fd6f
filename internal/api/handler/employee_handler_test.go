package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/api/middleware"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

type stubEmployeeService struct {
	listFn   func(ctx context.Context) ([]domain.Employee, error)
	getFn    func(ctx context.Context, id int64) (*domain.Employee, error)
	createFn func(ctx context.Context, in ports.CreateEmployeeInput) (*domain.Employee, error)
	updateFn func(ctx context.Context, in ports.UpdateEmployeeInput) (*domain.Employee, error)
	deleteFn func(ctx context.Context, id int64) (*domain.Employee, error)
}

func (s *stubEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) CreateEmployee(ctx context.Context, in ports.CreateEmployeeInput) (*domain.Employee, error) {
	return s.createFn(ctx, in)
}

func (s *stubEmployeeService) UpdateEmployee(ctx context.Context, in ports.UpdateEmployeeInput) (*domain.Employee, error) {
	return s.updateFn(ctx, in)
}

func (s *stubEmployeeService) DeleteEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.deleteFn(ctx, id)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	stub := &stubEmployeeService{
		createFn: func(_ context.Context, in ports.CreateEmployeeInput) (*domain.Employee, error) {
			if in.Name != "Alice" || in.Email != "a@x.com" || in.Department != "Eng" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Employee{
				ID: 10, Name: in.Name, Email: in.Email, Department: in.Department,
				Role: domain.RoleEmployee, PasswordHash: "secret-digest",
			}, nil
		},
	}
	h := NewEmployeeHandler(stub, false)

	c, rec := newTestContext(t, http.MethodPost, "/employees", `{"name":"Alice","email":"a@x.com","department":"Eng"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(10) || resp["name"] != "Alice" || resp["email"] != "a@x.com" || resp["department"] != "Eng" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	// The digest is write-only and must never be serialized.
	if strings.Contains(rec.Body.String(), "secret-digest") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}
}

func TestEmployeeHandler_Create_MissingField(t *testing.T) {
	stub := &stubEmployeeService{
		createFn: func(context.Context, ports.CreateEmployeeInput) (*domain.Employee, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewEmployeeHandler(stub, false)

	c, _ := newTestContext(t, http.MethodPost, "/employees", `{"name":"Alice","department":"Eng"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestEmployeeHandler_Get_InvalidID(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{}, false)

	c, _ := newTestContext(t, http.MethodGet, "/employees/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	stub := &stubEmployeeService{
		getFn: func(context.Context, int64) (*domain.Employee, error) {
			return nil, domain.ErrEmployeeNotFound
		},
	}
	h := NewEmployeeHandler(stub, false)

	c, _ := newTestContext(t, http.MethodGet, "/employees/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Get(c); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeHandler_Get_GuardedSelfAccess(t *testing.T) {
	stub := &stubEmployeeService{
		getFn: func(_ context.Context, id int64) (*domain.Employee, error) {
			return &domain.Employee{ID: id, Name: "Self"}, nil
		},
	}
	h := NewEmployeeHandler(stub, true)

	c, rec := newTestContext(t, http.MethodGet, "/employees/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	c.Set(middleware.ContextKeyEmployee, &domain.Employee{ID: 5, Role: domain.RoleEmployee})

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Get_GuardedOtherEmployeeForbidden(t *testing.T) {
	stub := &stubEmployeeService{
		getFn: func(context.Context, int64) (*domain.Employee, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewEmployeeHandler(stub, true)

	c, _ := newTestContext(t, http.MethodGet, "/employees/6", "")
	c.SetParamNames("id")
	c.SetParamValues("6")
	c.Set(middleware.ContextKeyEmployee, &domain.Employee{ID: 5, Role: domain.RoleEmployee})

	if err := h.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEmployeeHandler_Get_GuardedManagerSeesAnyone(t *testing.T) {
	stub := &stubEmployeeService{
		getFn: func(_ context.Context, id int64) (*domain.Employee, error) {
			return &domain.Employee{ID: id}, nil
		},
	}
	h := NewEmployeeHandler(stub, true)

	c, rec := newTestContext(t, http.MethodGet, "/employees/6", "")
	c.SetParamNames("id")
	c.SetParamValues("6")
	c.Set(middleware.ContextKeyEmployee, &domain.Employee{ID: 5, Role: domain.RoleManager})

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Delete_Success(t *testing.T) {
	stub := &stubEmployeeService{
		deleteFn: func(_ context.Context, id int64) (*domain.Employee, error) {
			return &domain.Employee{ID: id, Name: "Alice", Email: "a@x.com", Department: "Eng"}, nil
		},
	}
	h := NewEmployeeHandler(stub, false)

	c, rec := newTestContext(t, http.MethodDelete, "/employees/10", "")
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in response")
	}
	deleted, ok := resp["deletedEmployee"].(map[string]any)
	if !ok || deleted["id"] != float64(10) || deleted["name"] != "Alice" {
		t.Fatalf("unexpected deletedEmployee: %+v", resp)
	}
}

func TestEmployeeHandler_Update_MissingField(t *testing.T) {
	stub := &stubEmployeeService{
		updateFn: func(context.Context, ports.UpdateEmployeeInput) (*domain.Employee, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewEmployeeHandler(stub, false)

	c, _ := newTestContext(t, http.MethodPut, "/employees/3", `{"name":"A","email":"a@x.com"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestEmployeeHandler_List(t *testing.T) {
	stub := &stubEmployeeService{
		listFn: func(context.Context) ([]domain.Employee, error) {
			return []domain.Employee{
				{ID: 1, Name: "A"},
				{ID: 2, Name: "B"},
			}, nil
		},
	}
	h := NewEmployeeHandler(stub, false)

	c, rec := newTestContext(t, http.MethodGet, "/employees", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(resp))
	}
}
