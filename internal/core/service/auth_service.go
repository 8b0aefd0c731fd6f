package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/employee-api/internal/api/metrics"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// AuthService implements login, session resolution, and password resets on
// top of the employee repository and an opaque-token session store.
type AuthService struct {
	repo     ports.EmployeeRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(repo ports.EmployeeRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, logger: logger}
}

// Login verifies the password against the stored digest and issues a session.
// Unknown ids and digest mismatches both surface as ErrInvalidCredentials so
// the response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, employeeID int64, password string) (string, *domain.Employee, error) {
	if password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	emp, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, emp.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("employee_id", emp.ID).Msg("failed to create session")
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Int64("employee_id", emp.ID).Msg("login succeeded")
	return token, emp, nil
}

// ResolveSession turns a token back into the employee it identifies. Any
// failure — unknown token, expired session, employee deleted since login —
// returns ErrSessionNotFound and the caller treats the request as anonymous.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.Employee, error) {
	id, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return emp, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ResetPassword hashes the plaintext and persists the digest. The update is a
// silent no-op when the id matches no row, and sessions already issued for
// the employee stay valid.
func (s *AuthService) ResetPassword(ctx context.Context, employeeID int64, newPassword string) error {
	if newPassword == "" {
		return domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, employeeID, string(hash)); err != nil {
		s.logger.Error().Err(err).Int64("employee_id", employeeID).Msg("failed to reset password")
		return err
	}

	metrics.PasswordResetsTotal.Inc()
	s.logger.Info().Int64("employee_id", employeeID).Msg("password reset")
	return nil
}
