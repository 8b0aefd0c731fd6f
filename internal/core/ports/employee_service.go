package ports

import (
	"context"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// CreateEmployeeInput carries the writable fields of a new employee. Role is
// assigned by the store, not the caller.
type CreateEmployeeInput struct {
	Name       string
	Email      string
	Department string
}

// UpdateEmployeeInput carries a full replacement of an employee's writable
// fields. The id itself is immutable.
type UpdateEmployeeInput struct {
	ID         int64
	Name       string
	Email      string
	Department string
}

// EmployeeService defines the use-case operations for employee records.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) (*domain.Employee, error)
}
