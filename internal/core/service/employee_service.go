package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-api/internal/api/metrics"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// EmployeeService implements CRUD use cases over the employee repository.
// Handlers do the shape validation; this layer enforces field presence and
// delegates everything else to the database.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, in ports.CreateEmployeeInput) (*domain.Employee, error) {
	if missingField(in.Name, in.Email, in.Department) {
		return nil, domain.ErrValidation
	}

	created, err := s.repo.Create(ctx, in.Name, in.Email, in.Department)
	if err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create employee")
		return nil, err
	}

	metrics.EmployeesCreatedTotal.Inc()
	s.logger.Info().Int64("employee_id", created.ID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, in ports.UpdateEmployeeInput) (*domain.Employee, error) {
	if missingField(in.Name, in.Email, in.Department) {
		return nil, domain.ErrValidation
	}

	updated, err := s.repo.Update(ctx, in.ID, in.Name, in.Email, in.Department)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", in.ID).Msg("employee updated")
	return updated, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.EmployeesDeletedTotal.Inc()
	s.logger.Info().Int64("employee_id", id).Msg("employee deleted")
	return deleted, nil
}

// missingField reports whether any of the required text fields is empty after
// trimming whitespace.
func missingField(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
