package domain

import "errors"

var (
	// ErrEmployeeNotFound is returned when no row matches the requested id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrValidation covers malformed or missing input caught before the
	// database is touched.
	ErrValidation = errors.New("invalid input")

	// ErrEmailTaken is returned when the database rejects a uniqueness
	// constraint on the email column.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned for both an unknown employee id and
	// a password mismatch, so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("authentication failed")

	// ErrForbidden is returned when an authenticated caller lacks the role a
	// route requires.
	ErrForbidden = errors.New("access forbidden")

	// ErrSessionNotFound is returned when a session token does not resolve
	// to a stored session (missing, expired, or revoked).
	ErrSessionNotFound = errors.New("session not found")
)
