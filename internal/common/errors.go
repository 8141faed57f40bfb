// Package common defines shared constants and sentinel errors used across
// the client and server layers of PartyPlan. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid, malformed, or expired token).
	ErrInvalidToken = errors.New("invalid token")

	// Signup/login errors. Login deliberately reports the same error whether
	// the email is unknown or the password is wrong.
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Poll errors.
	ErrDuplicateVote = errors.New("already voted")
)
