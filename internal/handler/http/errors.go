// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not consist of exactly two space-separated parts
	// (scheme and token).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidAuthorizationScheme is returned when the header parses into
	// two parts but the scheme is not "Bearer".
	ErrInvalidAuthorizationScheme = errors.New("unsupported authorization scheme")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// "Bearer" scheme but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoPrincipalInContext is returned by authenticated handlers when the
	// request context carries no principal. It indicates a route wired
	// without the auth middleware.
	ErrNoPrincipalInContext = errors.New("no authenticated principal in request context")
)
