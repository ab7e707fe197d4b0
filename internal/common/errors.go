// Package common defines shared constants and sentinel errors used across
// the Rosetta client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Gateway-level errors (mapped from HTTP responses).
	ErrUnauthorized = errors.New("unauthorized")
	ErrAlreadySaved = errors.New("already saved")

	// Session errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors.
	ErrEmptyFolderName = errors.New("folder name must not be empty")
)
