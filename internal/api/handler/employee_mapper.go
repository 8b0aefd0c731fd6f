package handler

import "github.com/staffdesk/employee-api/internal/core/domain"

// --- Domain → HTTP response ---

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Role:       e.Role,
	}
}

func toEmployeeResponses(employees []domain.Employee) []employeeResponse {
	out := make([]employeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, toEmployeeResponse(&employees[i]))
	}
	return out
}
