package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are incomplete or invalid.
var (
	// ErrNoTokenSignKey indicates that the token signing secret is missing.
	// There is no default: a well-known secret would make every issued token
	// forgeable.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrInvalidTokenDuration indicates a zero or negative token validity window.
	ErrInvalidTokenDuration = errors.New("invalid token duration")
)
