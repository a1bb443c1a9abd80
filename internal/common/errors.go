package common

import "errors"

// Sentinel errors. Callers should use errors.Is to match these values.
var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Saved session errors.
	ErrNoSavedSession  = errors.New("no saved session")
	ErrInvalidPIN      = errors.New("invalid pin")
	ErrSessionExpired  = errors.New("saved session expired")
	ErrEmptyCredential = errors.New("empty credential")
)
