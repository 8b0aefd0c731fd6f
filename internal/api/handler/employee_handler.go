package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	service ports.EmployeeService
	// guarded mirrors the AUTH_ENABLED variant: when true, reads of a single
	// employee are restricted to self, admins, and managers.
	guarded bool
}

func NewEmployeeHandler(service ports.EmployeeService, guarded bool) *EmployeeHandler {
	return &EmployeeHandler{service: service, guarded: guarded}
}

// List handles GET /employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}   employeeResponse
// @Failure      500  {object}  errorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.ListEmployees(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(employees))
}

// Get handles GET /employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if h.guarded && !canViewEmployee(c, id) {
		return domain.ErrForbidden
	}

	emp, err := h.service.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(emp))
}

// Create handles POST /employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee fields"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateEmployee(c.Request().Context(), ports.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// Update handles PUT /employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Employee fields"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateEmployee(c.Request().Context(), ports.UpdateEmployeeInput{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(updated))
}

// Delete handles DELETE /employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  deleteEmployeeResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteEmployee(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteEmployeeResponse{
		Message:         "employee deleted",
		DeletedEmployee: toEmployeeResponse(deleted),
	})
}
