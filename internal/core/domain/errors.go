package domain

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP status
// codes in one place; services wrap them with context where useful.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("record not found")
	ErrVersionConflict    = errors.New("version conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("access forbidden")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnknownPermission  = errors.New("unknown permission")
)
