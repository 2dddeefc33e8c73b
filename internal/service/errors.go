package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request body fails
	// validation: required fields missing or values out of range.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrMissingRegistrationFields is returned when a registration request
	// lacks one of name, email, or password.
	ErrMissingRegistrationFields = errors.New("missing required fields: name, email, password")

	// ErrInvalidEmail is returned when a registration email does not parse as
	// an address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrMissingCredentials is returned when a login request lacks email or
	// password.
	ErrMissingCredentials = errors.New("missing email or password")

	// ErrInvalidCredentials is the single error for every login failure.
	// Unknown email and wrong password both map here so the response cannot
	// reveal which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotResourceOwner is returned when an authenticated principal tries
	// to act on a resource it neither owns nor administers.
	ErrNotResourceOwner = errors.New("forbidden: not your resource")

	// ErrTokenIsExpiredOrInvalid is the normalised error for every token
	// validation failure (expired, malformed, bad signature, wrong issuer).
	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
