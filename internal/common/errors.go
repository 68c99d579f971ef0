// Package common defines shared constants and sentinel errors used across
// client and server layers of mapmark. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("user already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors. ErrNoToken maps to 401, the other three to 403.
	ErrNoToken      = errors.New("no token presented")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token not outstanding")

	// Upload errors.
	ErrNoFile = errors.New("no file uploaded")
)
