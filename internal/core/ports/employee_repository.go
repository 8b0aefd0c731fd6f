package ports

import (
	"context"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// EmployeeRepository defines the persistence operations for employees. Every
// operation is a single parameterized statement; there are no multi-statement
// transactions and no optimistic locking — last writer wins.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, name, email, department string) (*domain.Employee, error)
	Update(ctx context.Context, id int64, name, email, department string) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) (*domain.Employee, error)

	// UpdatePassword replaces the stored digest. It reports success even
	// when id matches no row; callers relying on existence must check first.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
