package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/api/middleware"
	"github.com/staffdesk/employee-api/internal/core/domain"
)

// pathID parses the :id route parameter. A non-numeric id is a 400 before any
// service call.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}
	return id, nil
}

// canViewEmployee reports whether the authenticated caller may read the
// record with the given id: admins and managers see everyone, everyone sees
// themselves. Only consulted on the guarded variant of the API.
func canViewEmployee(c echo.Context, id int64) bool {
	emp := middleware.CurrentEmployee(c)
	if emp == nil {
		return false
	}
	if emp.Role == domain.RoleAdmin || emp.Role == domain.RoleManager {
		return true
	}
	return emp.ID == id
}
