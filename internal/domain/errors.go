package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidAmount      = errors.New("monetary amount must not be negative")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrInsufficientStock  = errors.New("insufficient stock")

	// ErrPatientNotFound is non-fatal for billing: invoice creation proceeds
	// with an empty patient snapshot instead of aborting.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrStorageUnavailable wraps infrastructure failures at the repository
	// boundary so callers can tell an outage apart from absence.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
