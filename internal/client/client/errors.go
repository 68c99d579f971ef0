package client

import "errors"

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")
	ErrAlreadyExists  = errors.New("user already exists")
	ErrNotFound       = errors.New("not found")
)
