// Package common defines shared constants and sentinel errors used across
// the store, router and transport layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorValidation = errors.New("validation error")

	// Router-level errors.
	ErrorConflict     = errors.New("conflict")
	ErrUsernameTaken  = errors.New("username already exists")
	ErrEmailTaken     = errors.New("email already exists")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInternal     = errors.New("internal error")

	// Token errors. A malformed token is always treated as expired.
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
)
