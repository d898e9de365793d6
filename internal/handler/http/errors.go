// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BestBytes

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrSessionNotFound is returned when the presented token does not map to
	// a live session, either because it never existed or because it expired.
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrAdminRequired is returned when an authenticated non-admin account
	// calls an administrative endpoint.
	ErrAdminRequired = errors.New("admin role required")
)
