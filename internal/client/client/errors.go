package client

import "errors"

var (
	// ErrTokenExpired is returned by SetTokens for a JWT whose exp has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrEmptyToken is returned by SetTokens when no access token is given.
	ErrEmptyToken = errors.New("empty access token")
)
