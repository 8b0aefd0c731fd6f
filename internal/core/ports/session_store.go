package ports

import "context"

// SessionStore persists opaque session tokens. The store owns token lifetime;
// the application only reads and writes the associated employee id.
type SessionStore interface {
	// Create issues a fresh token bound to employeeID.
	Create(ctx context.Context, employeeID int64) (string, error)

	// Get returns the employee id a token was issued for, or
	// domain.ErrSessionNotFound when the token is unknown or expired.
	Get(ctx context.Context, token string) (int64, error)

	// Delete revokes a token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
