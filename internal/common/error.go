// Package common defines shared sentinel errors used across the
// FolderForge server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors (missing or malformed required fields).
	ErrorValidation    = errors.New("validation error")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken              = errors.New("invalid token")
	ErrorInvalidAuthheaderFormat = errors.New("invalid auth header format")

	// Upstream errors (payment processor, object storage, proxied origins).
	ErrorUpstream = errors.New("upstream error")
)
