// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned during login when email or password is invalid.
	// The same error covers both cases so the response does not leak which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive is returned during login when the account has been deactivated.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrSessionStoreUnavailable is returned from Logout when no session store
	// was wired at startup (database unreachable).
	ErrSessionStoreUnavailable = errors.New("session store unavailable")
)
