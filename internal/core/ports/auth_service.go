package ports

import (
	"context"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// AuthService defines login, session resolution, and password management.
type AuthService interface {
	// Login verifies credentials and issues a session token on success.
	// Unknown ids and digest mismatches are indistinguishable to callers.
	Login(ctx context.Context, employeeID int64, password string) (string, *domain.Employee, error)

	// ResolveSession maps a session token back to the employee it was issued
	// for. A token whose employee no longer exists is treated as invalid.
	ResolveSession(ctx context.Context, token string) (*domain.Employee, error)

	// Logout destroys the session behind the token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error

	// ResetPassword hashes the plaintext and persists the new digest.
	// Existing sessions for the employee stay valid.
	ResetPassword(ctx context.Context, employeeID int64, newPassword string) error
}
